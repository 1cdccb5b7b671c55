package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(KindAuthentication, "token exchange failed")
	if KindOf(err) != KindAuthentication {
		t.Errorf("KindOf = %s, want %s", KindOf(err), KindAuthentication)
	}

	if KindOf(stderrors.New("plain")) != KindUnknown {
		t.Error("errors outside the taxonomy must report KindUnknown")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(KindPostCreation, "ugc post failed")
	outer := fmt.Errorf("publish step: %w", inner)

	if KindOf(outer) != KindPostCreation {
		t.Errorf("KindOf through %%w = %s, want %s", KindOf(outer), KindPostCreation)
	}
	if !IsKind(outer, KindPostCreation) {
		t.Error("IsKind must see through fmt.Errorf wrapping")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, KindAuthentication, "userinfo request failed")

	if !stderrors.Is(err, cause) {
		t.Error("Wrap must keep the cause reachable via errors.Is")
	}
	if msg := err.Error(); msg != "[authentication] userinfo request failed: connection refused" {
		t.Errorf("unexpected message: %q", msg)
	}
}
