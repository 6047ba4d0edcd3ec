package ports

import "context"

// ChatService puerto de salida hacia el proveedor de chat (LLM).
// Cualquier adaptador (OpenRouter, mock) debe implementar esta interfaz.
type ChatService interface {
	// Complete envía el prompt de sistema y el mensaje del usuario y devuelve la respuesta en texto.
	// El contexto debe llevar un timeout.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
