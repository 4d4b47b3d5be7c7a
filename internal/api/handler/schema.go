package handler

import "time"

// errorResponse is the envelope used for every non-validation error.
type errorResponse struct {
	Error string `json:"error"`
}

// validationErrorResponse is returned when request fields are rejected.
type validationErrorResponse struct {
	Errors []FieldError `json:"errores"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"nombre"   validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

type registerResponse struct {
	Message string       `json:"mensaje"`
	User    userResponse `json:"usuario"`
}

type loginResponse struct {
	Message string       `json:"mensaje"`
	Token   string       `json:"token"`
	User    userResponse `json:"usuario"`
}

type profileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Catalog ---

// productRequest is shared by create and update. precio and stock accept
// JSON numbers or numeric strings such as "100".
type productRequest struct {
	Name        string       `json:"nombre"      validate:"required,max=120"`
	Brand       string       `json:"marca"       validate:"required"`
	Price       numericField `json:"precio"      validate:"required,number_gt=0" swaggertype:"number"`
	Stock       numericField `json:"stock"       validate:"required,integer_min=0" swaggertype:"integer"`
	Category    string       `json:"categoria"   validate:"omitempty,categoria"`
	Description string       `json:"descripcion"`
	ImageURL    string       `json:"imagen_url"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nombre"`
	Brand       string    `json:"marca"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Category    string    `json:"categoria,omitempty"`
	Description string    `json:"descripcion"`
	ImageURL    string    `json:"imagen_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type productEnvelope struct {
	Message string          `json:"mensaje"`
	Product productResponse `json:"producto"`
}

type listProductsResponse struct {
	Total      int64             `json:"total"`
	Page       int               `json:"pagina"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPaginas"`
	Products   []productResponse `json:"productos"`
}

// --- Currency ---

type ratesResponse struct {
	Base      string             `json:"base"`
	UpdatedAt string             `json:"actualizadoEn"`
	Rates     map[string]float64 `json:"tasas"`
}

type conversionResponse struct {
	Amount float64 `json:"montoOriginal"`
	From   string  `json:"monedaOrigen"`
	To     string  `json:"monedaDestino"`
	Rate   float64 `json:"tasa"`
	Result float64 `json:"resultado"`
}
