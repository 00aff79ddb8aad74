package domain

type Hero struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        *int   `json:"age,omitempty"`
	SecretName string `json:"secret_name"`
}
