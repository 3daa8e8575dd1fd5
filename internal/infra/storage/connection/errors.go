package connection

import "errors"

var (
	// ErrConnectionNotFound возвращается, когда нет связи в нужном статусе
	ErrConnectionNotFound = errors.New("connection.repository: connection not found")

	ErrBuildQuery = errors.New("connection.repository: failed to build query")
	ErrExecQuery  = errors.New("connection.repository: failed to execute query")
	ErrScanRow    = errors.New("connection.repository: failed to scan row")
)
