package tools

import "golang.org/x/crypto/bcrypt"

// PasswordEncrypt gera o hash bcrypt da senha em texto puro.
func PasswordEncrypt(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	PanicOnErr(err)
	return string(hash)
}

// PasswordCompare compara a senha em texto puro com o hash armazenado.
func PasswordCompare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
