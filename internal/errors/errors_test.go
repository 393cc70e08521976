package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Run("classified error", func(t *testing.T) {
		err := New(KindKeyMissing, "no key")
		if got := KindOf(err); got != KindKeyMissing {
			t.Errorf("KindOf = %s, want %s", got, KindKeyMissing)
		}
	})

	t.Run("wrapped classified error", func(t *testing.T) {
		inner := Wrap(KindWriteFailed, "quota", stderrors.New("disk full"))
		err := fmt.Errorf("saving entry: %w", inner)
		if got := KindOf(err); got != KindWriteFailed {
			t.Errorf("KindOf = %s, want %s", got, KindWriteFailed)
		}
	})

	t.Run("unclassified error defaults to general", func(t *testing.T) {
		if got := KindOf(stderrors.New("boom")); got != KindGeneral {
			t.Errorf("KindOf = %s, want %s", got, KindGeneral)
		}
	})
}

func TestIsKind(t *testing.T) {
	err := New(KindPermissionDenied, "denied")
	if !IsKind(err, KindPermissionDenied) {
		t.Error("expected match")
	}
	if IsKind(err, KindInvalidKey) {
		t.Error("expected mismatch")
	}
	if IsKind(stderrors.New("boom"), KindGeneral) {
		t.Error("unclassified errors carry no kind")
	}
	if IsKind(nil, KindGeneral) {
		t.Error("nil carries no kind")
	}
}

func TestErrorMessage(t *testing.T) {
	plain := New(KindGeneral, "it broke")
	if plain.Error() != "it broke" {
		t.Errorf("unexpected message: %q", plain.Error())
	}

	cause := stderrors.New("underneath")
	wrapped := Wrap(KindGeneral, "it broke", cause)
	if wrapped.Error() != "it broke: underneath" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped cause must be reachable via errors.Is")
	}
}

func TestFormat(t *testing.T) {
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q", got)
	}
	if got := Formatf("bad value %d", 7); got != "Error: bad value 7" {
		t.Errorf("Formatf = %q", got)
	}
}
