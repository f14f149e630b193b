package logging

import (
	"errors"
	"fmt"
)

// OperationError сбой этапа конвейера измерения для конкретного фото
type OperationError struct {
	Operation string // этап: load_image, segment_outline, ...
	ImagePath string
	Err       error
}

func (e *OperationError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	if e.ImagePath == "" {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s failed for %s: %v", e.Operation, e.ImagePath, e.Err)
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewOperationError привязывает ошибку к этапу; nil остаётся nil
func NewOperationError(operation, imagePath string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, ImagePath: imagePath, Err: err}
}

// FailedOperation возвращает этап, на котором оборвался конвейер, или пустую строку
func FailedOperation(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Operation
	}
	return ""
}
