package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErrKeepsTypedErrors(t *testing.T) {
	err := NotFoundErr.WithMessage("video not found")
	got := ConvertErr(err)
	if got.ErrCode != NotFoundErrCode {
		t.Fatalf("expected code %d, got %d", NotFoundErrCode, got.ErrCode)
	}
	if got.ErrMsg != "video not found" {
		t.Fatalf("unexpected message %q", got.ErrMsg)
	}
}

func TestConvertErrUnwrapsWrappedErrNo(t *testing.T) {
	err := errors.WithMessage(ForbiddenErr, "db.GetCommentInfo failed")
	got := ConvertErr(err)
	if got.ErrCode != ForbiddenCode {
		t.Fatalf("expected forbidden code through the wrap, got %d", got.ErrCode)
	}
}

func TestConvertErrFoldsUnknownErrors(t *testing.T) {
	got := ConvertErr(errors.New("connection refused"))
	if got.ErrCode != ServiceErrCode {
		t.Fatalf("expected service code, got %d", got.ErrCode)
	}
	if got.ErrMsg != "connection refused" {
		t.Fatalf("original message must be kept, got %q", got.ErrMsg)
	}
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	original := RequestErr.ErrMsg
	_ = RequestErr.WithMessage("custom")
	if RequestErr.ErrMsg != original {
		t.Fatal("WithMessage must return a copy")
	}
}
