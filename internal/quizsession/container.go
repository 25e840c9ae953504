package quizsession

type SessionContainer struct {
	Store   *Store
	Handler *Handler
}

func NewSessionContainer() *SessionContainer {
	store := NewStore()
	handler := NewHandler(store)

	return &SessionContainer{
		Store:   store,
		Handler: handler,
	}
}
