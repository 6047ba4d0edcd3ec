package dto

// AdvisorRequest pregunta al asesor.
type AdvisorRequest struct {
	Message any `json:"message"`
}

// AdvisorResponse respuesta del asesor.
type AdvisorResponse struct {
	Response string `json:"response"`
}

// AdvisorError cuerpo de error del endpoint del asesor.
type AdvisorError struct {
	Error string `json:"error"`
}
