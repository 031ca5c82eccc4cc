package impl

import (
	"gestcondo/internal/domain/entity"
)

// originCondominiums returns the condominium IDs an origin is anchored to.
// Resident origins are resolved against the membership table before this
// point; system origins have none.
func originCondominiums(origin entity.Origin, residentCondos []int64) []int64 {
	switch o := origin.(type) {
	case entity.CondominiumOrigin:
		return o.CondominiumIDs
	case entity.ResidentOrigin:
		return residentCondos
	case entity.BroadcastOrigin:
		return o.CondominiumIDs
	default:
		return nil
	}
}

// resolveAdminTargets walks every administrator and applies the targeting
// rule of the origin. System origins target everyone unconditionally; every
// other origin targets the administrators whose scope overlaps at least one
// of the origin's condominiums. A full scope always overlaps; a limited
// scope with an empty allow-list never does.
func resolveAdminTargets(admins []*entity.Administrator, origin entity.Origin, condominiumIDs []int64) []int64 {
	targets := make([]int64, 0, len(admins))

	if _, system := origin.(entity.SystemOrigin); system {
		for _, admin := range admins {
			targets = append(targets, admin.ID)
		}

		return targets
	}

	for _, admin := range admins {
		scope := admin.AccessScope()
		if scope.IsFull() || scope.CoversAny(condominiumIDs) {
			targets = append(targets, admin.ID)
		}
	}

	return targets
}

// residentFacingType reports whether a notification of this type is also
// delivered to the residents of its condominiums, not only to the
// administrators.
func residentFacingType(notificationType entity.NotificationType) bool {
	switch notificationType {
	case entity.TypeAdminMessage, entity.TypeAssembly, entity.TypeDocument:
		return true
	default:
		return false
	}
}

// storedCondominiumID picks the condominium recorded on the notification row
// itself. Only a single-condominium origin pins the row; multi-condominium
// and system notifications store NULL and are governed by their links alone.
func storedCondominiumID(condominiumIDs []int64) *int64 {
	if len(condominiumIDs) != 1 {
		return nil
	}
	id := condominiumIDs[0]

	return &id
}
