// Package symbol converts configuration keys into generated Go identifiers.
//
// Keys are word-separated lowercase ("invalid_param"); generated symbols are
// the capitalized concatenation ("InvalidParam"). The transform is pure and
// deterministic so regeneration always yields the same identifiers.
package symbol

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bizerr/bizerr/pkg/common/err"
)

const pkgName = "symbol"

// isSeparator reports whether r splits words in a configuration key.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// Transform converts a configuration key into its generated symbol name.
// Leading/trailing separators are ignored and consecutive separators
// collapse; a key with no separators is simply capitalized.
func Transform(key string) string {
	var b strings.Builder
	for _, word := range strings.FieldsFunc(key, isSeparator) {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// TransformAll maps each key to its symbol, preserving order.
// Two distinct keys transforming to the same symbol is a fatal collision;
// the error names both source keys and nothing is returned.
func TransformAll(keys []string) ([]string, error) {
	symbols := make([]string, 0, len(keys))
	seen := make(map[string]string, len(keys))

	for _, key := range keys {
		sym := Transform(key)
		if firstKey, dup := seen[sym]; dup {
			return nil, NewCollisionError(sym, firstKey, key)
		}
		seen[sym] = key
		symbols = append(symbols, sym)
	}

	return symbols, nil
}

// NewCollisionError reports two keys transforming to the same symbol.
func NewCollisionError(sym, firstKey, secondKey string) *err.Error {
	e := err.New(pkgName, err.CodeSymbolCollision, "transform",
		fmt.Sprintf("keys %q and %q both generate symbol %q", firstKey, secondKey, sym), nil)
	e.WithContext("first_key", firstKey).WithContext("second_key", secondKey)
	return e
}

// IsCollision returns true if the error is a symbol collision.
func IsCollision(e error) bool {
	return err.IsCode(e, err.CodeSymbolCollision)
}
