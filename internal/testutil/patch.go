package testutil

import "github.com/thenoetrevino/todo/internal/models"

func patchDone(done bool) models.Patch {
	return models.Patch{Done: &done}
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}
