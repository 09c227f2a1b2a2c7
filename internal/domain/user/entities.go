package user

type Permission string

const (
	PermissionRead       Permission = "lectura"
	PermissionWrite      Permission = "escritura"
	PermissionAdmin      Permission = "administrador"
	PermissionAccounting Permission = "contable"
)

type User struct {
	ID    uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"size:128;column:nombre;not null" json:"nombre"`
	Email string `gorm:"size:128;column:email;uniqueIndex:ux_usuarios_email" json:"email"`
	Role  string `gorm:"size:32;column:rol" json:"rol"`
}

func (User) TableName() string { return "usuarios" }

// Identity is the resolved capability set for one session, computed once by
// the identity provider at login and cached for the session's lifetime.
type Identity struct {
	UserID     uint64 `json:"user_id"`
	IsAdmin    bool   `json:"is_admin"`
	CanRead    bool   `json:"can_read"`
	CanWrite   bool   `json:"can_write"`
	CanAccount bool   `json:"can_account"`
}

// CanMutate gates every create/update/delete on orders, ledgers, providers
// and departments.
func (i Identity) CanMutate() bool { return i.IsAdmin || i.CanWrite }
