package usecase

import (
	"errors"
	"fmt"
)

// 失敗の種別。HTTPステータスへの変換はhandler側の責務。
type ErrKind int

const (
	KindNotFound ErrKind = iota + 1
	KindInvalidRequest
	KindConflict
	KindInternal
)

func (k ErrKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidRequest:
		return "invalid_request"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// 業務エラー。Messageは利用者にそのまま見せる固定文言。
// ストレージ由来のエラーはAppErrorに包まずそのまま上に返す。
type AppError struct {
	Kind    ErrKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewAppError(kind ErrKind, message string) error {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}
