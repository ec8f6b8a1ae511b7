package db

// GetDBTX returns the underlying database transaction or connection interface
func (q *Queries) GetDBTX() DBTX {
	return q.db
}
