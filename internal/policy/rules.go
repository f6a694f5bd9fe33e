package policy

import (
	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

// MembershipRow is a list membership evaluated together with its parent
// list, since every membership rule is inherited from the list.
type MembershipRow struct {
	List   domain.ItemList
	ItemID uuid.UUID
}

func anyone[T any](domain.Subject, T) bool { return true }

func admin[T any](s domain.Subject, _ T) bool { return s.IsAdmin() }

var Accounts = Policy[domain.Account]{
	Entity: "account",
	Rules: map[Action]Rule[domain.Account]{
		ActionRead: anyone[domain.Account],
		// Accounts are provisioned on first sign-in for the signed-in
		// subject only, always with the user role.
		ActionInsert: func(s domain.Subject, a domain.Account) bool {
			return s.Owns(a.ID) && a.Role == domain.UserRoleUser
		},
		ActionUpdate: func(s domain.Subject, a domain.Account) bool { return s.Owns(a.ID) },
	},
}

var Items = Policy[domain.Item]{
	Entity: "item",
	Rules: map[Action]Rule[domain.Item]{
		ActionRead:   anyone[domain.Item],
		ActionInsert: admin[domain.Item],
		ActionUpdate: admin[domain.Item],
		ActionDelete: admin[domain.Item],
	},
}

func reviewAuthor(s domain.Subject, r domain.Review) bool { return s.Owns(r.AccountID) }

var Reviews = Policy[domain.Review]{
	Entity: "review",
	Rules: map[Action]Rule[domain.Review]{
		ActionRead:   anyone[domain.Review],
		ActionInsert: reviewAuthor,
		ActionUpdate: reviewAuthor,
		ActionDelete: reviewAuthor,
	},
}

var Reports = Policy[domain.ReviewReport]{
	Entity:  "review_report",
	Conceal: true,
	Rules: map[Action]Rule[domain.ReviewReport]{
		ActionRead:   admin[domain.ReviewReport],
		ActionInsert: func(s domain.Subject, r domain.ReviewReport) bool { return s.Owns(r.ReporterID) },
		ActionUpdate: admin[domain.ReviewReport],
	},
}

func listOwner(s domain.Subject, l domain.ItemList) bool { return s.Owns(l.OwnerID) }

var Lists = Policy[domain.ItemList]{
	Entity:  "item_list",
	Conceal: true,
	Rules: map[Action]Rule[domain.ItemList]{
		ActionRead:   func(s domain.Subject, l domain.ItemList) bool { return l.IsPublic || s.Owns(l.OwnerID) },
		ActionInsert: listOwner,
		ActionUpdate: listOwner,
		ActionDelete: listOwner,
	},
}

var Memberships = Policy[MembershipRow]{
	Entity:  "item_list_membership",
	Conceal: true,
	Rules: map[Action]Rule[MembershipRow]{
		ActionRead:   func(s domain.Subject, m MembershipRow) bool { return Lists.Allows(s, ActionRead, m.List) },
		ActionInsert: func(s domain.Subject, m MembershipRow) bool { return listOwner(s, m.List) },
		ActionDelete: func(s domain.Subject, m MembershipRow) bool { return listOwner(s, m.List) },
	},
}

func statusOwner(s domain.Subject, st domain.ItemStatus) bool { return s.Owns(st.AccountID) }

var Statuses = Policy[domain.ItemStatus]{
	Entity:  "item_status",
	Conceal: true,
	Rules: map[Action]Rule[domain.ItemStatus]{
		ActionRead:   statusOwner,
		ActionInsert: statusOwner,
		ActionUpdate: statusOwner,
		ActionDelete: statusOwner,
	},
}

func discussionAuthor(s domain.Subject, d domain.Discussion) bool { return s.Owns(d.AuthorID) }

var Discussions = Policy[domain.Discussion]{
	Entity: "discussion",
	Rules: map[Action]Rule[domain.Discussion]{
		ActionRead:   anyone[domain.Discussion],
		ActionInsert: discussionAuthor,
		ActionUpdate: discussionAuthor,
		ActionDelete: discussionAuthor,
	},
}

func replyAuthor(s domain.Subject, r domain.DiscussionReply) bool { return s.Owns(r.AuthorID) }

var Replies = Policy[domain.DiscussionReply]{
	Entity: "discussion_reply",
	Rules: map[Action]Rule[domain.DiscussionReply]{
		ActionRead:   anyone[domain.DiscussionReply],
		ActionInsert: replyAuthor,
		ActionUpdate: replyAuthor,
		ActionDelete: replyAuthor,
	},
}

var Requests = Policy[domain.ItemRequest]{
	Entity:  "item_request",
	Conceal: true,
	Rules: map[Action]Rule[domain.ItemRequest]{
		ActionRead: func(s domain.Subject, r domain.ItemRequest) bool {
			return s.Owns(r.RequesterID) || s.IsAdmin()
		},
		ActionInsert: func(s domain.Subject, r domain.ItemRequest) bool { return s.Owns(r.RequesterID) },
		ActionUpdate: admin[domain.ItemRequest],
	},
}
