package comment

import (
	"context"
	"errors"
	"strings"

	"compras-backend/internal/domain/order"
	"compras-backend/internal/domain/uow"
	"compras-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

var ErrEmptyComment = errors.New("comment text is required")

// Add attaches an author-stamped comment to an existing order.
func (u *Usecase) Add(ctx context.Context, orderID, authorID uint64, text string) (*order.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	var out *order.Comment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Orders.GetByID(ctx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ErrNotFound
			}
			return err
		}
		cm := &order.Comment{OrderID: orderID, UserID: authorID, Text: text}
		if err := r.Orders.CreateComment(ctx, cm); err != nil {
			return err
		}
		out = cm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a comment. Only the comment's author or an admin may do so.
func (u *Usecase) Delete(ctx context.Context, commentID uint64, ident user.Identity) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cm, err := r.Orders.CommentByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ErrCommentNotFound
			}
			return err
		}
		if !ident.IsAdmin && cm.UserID != ident.UserID {
			return order.ErrNotCommentAuthor
		}
		_, err = r.Orders.DeleteComment(ctx, commentID)
		return err
	})
}
