package validate

import (
	"fmt"
	"regexp"
)

// Username must be letters, digits, underscore, hyphen or dot, 1-64 chars.
var usernameRx = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// Credentials validates a register/login pair.
func Credentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRx.MatchString(username) {
		return fmt.Errorf("username must match %s", usernameRx.String())
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > 128 {
		return fmt.Errorf("password exceeds 128 characters")
	}
	return nil
}

// Transcript validates the summarize request body.
func Transcript(v string) error {
	if err := NonEmpty("transcript", v); err != nil {
		return err
	}
	return MaxLen("transcript", v, 20000)
}

// Query validates the search request body.
func Query(v string) error {
	if err := NonEmpty("query_text", v); err != nil {
		return err
	}
	return MaxLen("query_text", v, 2000)
}

// Profile validates the setup-profile request body.
func Profile(goals, principles []string) error {
	if len(goals) > 50 {
		return fmt.Errorf("too many goals (max 50)")
	}
	if len(principles) > 50 {
		return fmt.Errorf("too many principles (max 50)")
	}
	for i, g := range goals {
		if g == "" {
			return fmt.Errorf("goal %d is empty", i)
		}
		if err := MaxLen("goal", g, 500); err != nil {
			return err
		}
	}
	for i, p := range principles {
		if p == "" {
			return fmt.Errorf("principle %d is empty", i)
		}
		if err := MaxLen("principle", p, 500); err != nil {
			return err
		}
	}
	return nil
}
