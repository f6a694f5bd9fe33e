package domain

// UserRole represents the authorization level of an account.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// StatusKind is a per-account reading state for an item. Kinds are not
// mutually exclusive: an account may hold reading and favorite at once.
type StatusKind string

const (
	StatusKindWant      StatusKind = "want"
	StatusKindReading   StatusKind = "reading"
	StatusKindCompleted StatusKind = "completed"
	StatusKindFavorite  StatusKind = "favorite"
)

func (k StatusKind) String() string { return string(k) }

func (k StatusKind) IsValid() bool {
	switch k {
	case StatusKindWant, StatusKindReading, StatusKindCompleted, StatusKindFavorite:
		return true
	}
	return false
}

// ReportReason classifies why a review was reported.
type ReportReason string

const (
	ReportReasonSpam          ReportReason = "spam"
	ReportReasonInappropriate ReportReason = "inappropriate"
	ReportReasonSpoiler       ReportReason = "spoiler"
	ReportReasonHarassment    ReportReason = "harassment"
	ReportReasonOther         ReportReason = "other"
)

func (r ReportReason) String() string { return string(r) }

func (r ReportReason) IsValid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonInappropriate, ReportReasonSpoiler,
		ReportReasonHarassment, ReportReasonOther:
		return true
	}
	return false
}

// ReportStatus is the moderation state of a review report.
type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "pending"
	ReportStatusReviewed    ReportStatus = "reviewed"
	ReportStatusDismissed   ReportStatus = "dismissed"
	ReportStatusActionTaken ReportStatus = "actionTaken"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusDismissed, ReportStatusActionTaken:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ReportStatus) IsTerminal() bool {
	return s.IsValid() && s != ReportStatusPending
}

// IsOutcome reports whether s is a valid resolution of a pending report.
func (s ReportStatus) IsOutcome() bool {
	return s.IsTerminal()
}

// RequestStatus is the lifecycle state of an item request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// SchemaState is the drift detector's view of the live schema.
type SchemaState string

const (
	SchemaStateUnknown       SchemaState = "unknown"
	SchemaStateHealthy       SchemaState = "healthy"
	SchemaStateDriftDetected SchemaState = "drift_detected"
)

func (s SchemaState) String() string { return string(s) }

// ItemSortField defines sort options for catalog listings.
type ItemSortField string

const (
	ItemSortTitle     ItemSortField = "title"
	ItemSortRating    ItemSortField = "rating"
	ItemSortCreatedAt ItemSortField = "created_at"
)

func (f ItemSortField) IsValid() bool {
	switch f {
	case ItemSortTitle, ItemSortRating, ItemSortCreatedAt:
		return true
	}
	return false
}

// SortDirection defines ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}
