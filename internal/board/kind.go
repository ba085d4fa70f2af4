package board

import (
	"fmt"
	"strings"
)

// Kind is the terrain type of a tile. Each kind is bound to one texture by
// the assets package.
type Kind uint8

// Tile kinds, in the order the texture table lists them.
const (
	KindGrass Kind = iota
	KindForest
	KindWheat
	KindBrick
	KindStone
)

// KindCount is the number of defined tile kinds.
const KindCount = 5

var kindNames = [KindCount]string{"grass", "forest", "wheat", "brick", "stone"}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindGrass, KindForest, KindWheat, KindBrick, KindStone}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tile kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid tile kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
