package utils

const CompanyIDMaxLength = 64

// IsCompanyIDValid accepts the ids the document API uses in its routes:
// letters, digits, '-' and '_'.
func IsCompanyIDValid(id string) bool {
	if id == "" || len(id) > CompanyIDMaxLength {
		return false
	}

	for _, ch := range id {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch == '-' || ch == '_':
		default:
			return false
		}
	}
	return true
}
