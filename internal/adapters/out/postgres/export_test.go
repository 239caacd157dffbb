package postgres

import "orderservice/internal/core/domain/model/kernel"

// TrackedIDs returns the ids of aggregates written since the unit of work
// was created, in write order. A rollback clears the list.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
