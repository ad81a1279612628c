package utils

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"inventory/models"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

func IsRoleValid(role models.Role) bool {
	return role == models.AdminRole || role == models.UserRole
}

func IsMobileValid(mobile string) bool {
	return mobilePattern.MatchString(strings.TrimSpace(mobile))
}

// ParseDOB accepts the YYYY-MM-DD form used both as the stored date of birth
// and as the login secret.
func ParseDOB(dob string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(dob))
	if err != nil {
		return time.Time{}, errors.New("dob must be in YYYY-MM-DD format")
	}
	if t.After(time.Now()) {
		return time.Time{}, errors.New("dob cannot be in the future")
	}
	return t, nil
}
