package entity

import "time"

// User representa un usuario de la tienda. Inmutable después del registro:
// ninguna operación expuesta lo modifica ni lo elimina.
type User struct {
	ID           string
	Email        string    // único, sensible a mayúsculas tal como se almacena
	PasswordHash string    // digest argon2id, nunca el texto plano
	IsAdmin      bool
	CreatedAt    time.Time
}
