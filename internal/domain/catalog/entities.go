package catalog

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrProviderNotFound   = errors.New("provider not found")
)

type Department struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"size:128;column:nombre;not null" json:"nombre"`
}

func (Department) TableName() string { return "departamentos" }

type Provider struct {
	ID          uint64       `gorm:"primaryKey;column:id" json:"id"`
	Name        string       `gorm:"size:128;column:nombre;not null" json:"nombre"`
	CIF         string       `gorm:"size:32;column:cif" json:"cif"`
	Address     string       `gorm:"size:256;column:direccion" json:"direccion"`
	City        string       `gorm:"size:128;column:localidad" json:"localidad"`
	Province    string       `gorm:"size:128;column:provincia" json:"provincia"`
	Phone       string       `gorm:"size:32;column:telefono" json:"telefono"`
	Email       string       `gorm:"size:128;column:email" json:"email"`
	Departments []Department `gorm:"many2many:proveedor_departamento" json:"departamentos,omitempty"`
}

func (Provider) TableName() string { return "proveedores" }
