package preference

import "go.mongodb.org/mongo-driver/v2/mongo"

type PreferenceContainer struct {
	Service Service
	Handler *Handler
}

func NewPreferenceContainer(db *mongo.Database, directory UserDirectory) *PreferenceContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service, directory)

	return &PreferenceContainer{
		Service: service,
		Handler: handler,
	}
}
