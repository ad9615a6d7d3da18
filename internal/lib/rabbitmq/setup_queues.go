package rabbitmq

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetCatalogQueues очереди, которые получают события каталога.
// catalog.audit собирает все события, остальные по типу записи.
func GetCatalogQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "catalog.audit", RoutingKey: "#"},
		{QueueName: "catalog.services", RoutingKey: "service.*"},
		{QueueName: "catalog.products", RoutingKey: "product.*"},
	}
}
