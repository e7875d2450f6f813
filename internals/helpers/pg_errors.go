package helper

import "strings"

// IsUniqueViolation: deteksi pelanggaran unique constraint.
// String fallback (kompatibel untuk lib/pq & pgx yang dibungkus).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
