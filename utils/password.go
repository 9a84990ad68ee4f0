package utils

import (
	"crypto/subtle"

	"verduleria/config"

	"github.com/matthewhartstonge/argon2"
)

func HashPin(pin string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(pin))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyAdminPin checks the submitted PIN against ADMIN_PIN_HASH (argon2)
// when set, otherwise against the plain ADMIN_PIN in constant time.
func VerifyAdminPin(pin string) (bool, error) {
	if hash := config.AppConfig.AdminPINHash; hash != "" {
		return argon2.VerifyEncoded([]byte(pin), []byte(hash))
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(config.AppConfig.AdminPIN)) == 1, nil
}
