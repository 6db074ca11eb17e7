package permissions

import (
	users_enums "marca/internal/features/users/enums"
)

type Capability string

const (
	CapViewEvents     Capability = "VIEW_EVENTS"
	CapViewFinancials Capability = "VIEW_FINANCIALS"
	CapCreateEvents   Capability = "CREATE_EVENTS"
	CapEditEvents     Capability = "EDIT_EVENTS"
	CapDeleteEvents   Capability = "DELETE_EVENTS"
	CapManageMembers  Capability = "MANAGE_MEMBERS"
	CapManageArtist   Capability = "MANAGE_ARTIST"
	CapDeleteArtist   Capability = "DELETE_ARTIST"
)

type Capabilities struct {
	CanViewEvents     bool `json:"canViewEvents"`
	CanViewFinancials bool `json:"canViewFinancials"`
	CanCreateEvents   bool `json:"canCreateEvents"`
	CanEditEvents     bool `json:"canEditEvents"`
	CanDeleteEvents   bool `json:"canDeleteEvents"`
	CanManageMembers  bool `json:"canManageMembers"`
	CanManageArtist   bool `json:"canManageArtist"`
	CanDeleteArtist   bool `json:"canDeleteArtist"`
}

func (c Capabilities) Has(capability Capability) bool {
	switch capability {
	case CapViewEvents:
		return c.CanViewEvents
	case CapViewFinancials:
		return c.CanViewFinancials
	case CapCreateEvents:
		return c.CanCreateEvents
	case CapEditEvents:
		return c.CanEditEvents
	case CapDeleteEvents:
		return c.CanDeleteEvents
	case CapManageMembers:
		return c.CanManageMembers
	case CapManageArtist:
		return c.CanManageArtist
	case CapDeleteArtist:
		return c.CanDeleteArtist
	default:
		return false
	}
}

// CapabilitiesOf is the single source of truth for what each artist role may
// do. It is pure and total: an unknown role yields no capabilities at all.
// No other component may hard-code its own role comparison.
func CapabilitiesOf(role users_enums.ArtistRole) Capabilities {
	switch role {
	case users_enums.ArtistRoleViewer:
		return Capabilities{
			CanViewEvents: true,
		}
	case users_enums.ArtistRoleEditor:
		return Capabilities{
			CanViewEvents:     true,
			CanViewFinancials: true,
			CanCreateEvents:   true,
			CanEditEvents:     true,
			CanDeleteEvents:   true,
		}
	case users_enums.ArtistRoleAdmin:
		return Capabilities{
			CanViewEvents:     true,
			CanViewFinancials: true,
			CanCreateEvents:   true,
			CanEditEvents:     true,
			CanDeleteEvents:   true,
			CanManageMembers:  true,
		}
	case users_enums.ArtistRoleOwner:
		return Capabilities{
			CanViewEvents:     true,
			CanViewFinancials: true,
			CanCreateEvents:   true,
			CanEditEvents:     true,
			CanDeleteEvents:   true,
			CanManageMembers:  true,
			CanManageArtist:   true,
			CanDeleteArtist:   true,
		}
	default:
		return Capabilities{}
	}
}
