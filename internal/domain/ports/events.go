package ports

// EventPublisher define a interface para publicação de eventos da
// frota (alocações de moto, por exemplo) aos clientes conectados
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}
