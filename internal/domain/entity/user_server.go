package entity

// PasswordHash solo existe del lado del servidor stub; nunca viaja en JSON
// ni se serializa al almacén local del cliente.
//
// Se mantiene en un archivo aparte para dejar claro que el cliente no lo usa.
type ServerUser struct {
	User
	PasswordHash string `json:"-"` // bcrypt
}
