package user

// Id is the opaque identifier of a registered user. The core never
// inspects it; it is only used as a map key and for ownership checks.
type Id string

func (id Id) String() string {
	return string(id)
}

type User struct {
	Id        Id     `json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
}
