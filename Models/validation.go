package Models

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func oneOf(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
