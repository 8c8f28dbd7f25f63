package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/packstack/services/inventory/domain"
)

// ItemName is a normalized item name: surrounding whitespace trimmed and
// inner whitespace runs collapsed to one space, so "Big  Agnes " and
// "Big Agnes" collide under the per-owner uniqueness constraint.
type ItemName string

const maxItemNameLength = 255

// NewItemName normalizes s and checks it holds 1 to 255 runes and no
// control characters.
func NewItemName(s string) (ItemName, error) {
	if strings.IndexFunc(s, isNameControl) >= 0 {
		return "", fmt.Errorf("%w: must not contain control characters", domain.ErrInvalidItemName)
	}
	name := strings.Join(strings.Fields(s), " ")
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return "", fmt.Errorf("%w: must not be blank", domain.ErrInvalidItemName)
	case n > maxItemNameLength:
		return "", fmt.Errorf("%w: must not exceed %d characters", domain.ErrInvalidItemName, maxItemNameLength)
	}
	return ItemName(name), nil
}

// isNameControl reports control characters other than the whitespace that
// normalization folds away.
func isNameControl(r rune) bool {
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}

func (n ItemName) String() string {
	return string(n)
}
