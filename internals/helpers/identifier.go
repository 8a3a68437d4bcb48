package helper

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"gorm.io/gorm"
)

// GenerateUniqueIdentifier builds a registration number like "ABC-4821-STD"
// from the school prefix and an entity tag.
func GenerateUniqueIdentifier(prefix, kind string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		n = big.NewInt(0)
	}
	num := n.Int64() + 1000

	tag := strings.ToUpper(kind)
	if len(tag) > 4 {
		tag = tag[:4]
	}
	return fmt.Sprintf("%s-%d-%s", strings.ToUpper(prefix), num, tag)
}

const prefixMaxAttempts = 8

var ErrPrefixExhausted = errors.New("could not find a free school prefix")

// GenerateSchoolPrefix derives a short uppercase prefix from the school name
// and checks the schools table until a free one is found. Collisions are
// resolved by a random numeric suffix, bounded to prefixMaxAttempts attempts.
func GenerateSchoolPrefix(db *gorm.DB, table, column, name string) (string, error) {
	base := prefixBase(name)

	candidate := base
	for attempt := 0; attempt < prefixMaxAttempts; attempt++ {
		var count int64
		if err := db.Table(table).Where(column+" = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		n, err := rand.Int(rand.Reader, big.NewInt(90))
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s%d", base, n.Int64()+10)
	}
	return "", ErrPrefixExhausted
}

func prefixBase(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			if r >= 'A' && r <= 'Z' {
				b.WriteRune(r)
				break
			}
		}
		if b.Len() >= 3 {
			break
		}
	}
	if b.Len() < 3 {
		return (b.String() + "SCH")[:3]
	}
	return b.String()
}
