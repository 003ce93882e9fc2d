package types

// Action identifies an operation on a resource collection.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionModerate Action = "moderate"
)

// Resource identifies a resource collection exposed by the API.
type Resource string

const (
	ResourceService  Resource = "service"
	ResourceProject  Resource = "project"
	ResourceArticle  Resource = "article"
	ResourceEvent    Resource = "event"
	ResourceGallery  Resource = "gallery item"
	ResourceFeedback Resource = "feedback"
	ResourceContact  Resource = "contact"
)

// Policy is the static per-resource configuration: which actions are open
// to unauthenticated callers, and which fields the public serialization
// variant omits. Everything not listed in PublicActions requires an
// authenticated caller. Resolved by lookup, never by dynamic dispatch.
type Policy struct {
	Resource      Resource
	PublicActions map[Action]bool
	// PublicOmit lists JSON fields stripped from responses rendered for
	// unauthenticated callers.
	PublicOmit []string
}

// Allows reports whether the action may proceed for the caller.
func (p Policy) Allows(action Action, authenticated bool) bool {
	if authenticated {
		return true
	}
	return p.PublicActions[action]
}

// publicRead marks list and retrieve as open; mutations stay authenticated.
func publicRead() map[Action]bool {
	return map[Action]bool{ActionList: true, ActionRetrieve: true}
}

// policyMatrix defines the fixed access rules per resource.
// Key: Resource -> Policy
var policyMatrix = map[Resource]Policy{
	ResourceService: {Resource: ResourceService, PublicActions: publicRead(), PublicOmit: []string{"updated_at"}},
	ResourceProject: {Resource: ResourceProject, PublicActions: publicRead(), PublicOmit: []string{"updated_at"}},
	ResourceArticle: {Resource: ResourceArticle, PublicActions: publicRead(), PublicOmit: []string{"updated_at"}},
	ResourceEvent:   {Resource: ResourceEvent, PublicActions: publicRead(), PublicOmit: []string{"updated_at"}},
	ResourceGallery: {Resource: ResourceGallery, PublicActions: publicRead(), PublicOmit: []string{"updated_at"}},
	ResourceFeedback: {
		Resource: ResourceFeedback,
		// Anyone may submit feedback or read the moderated listing;
		// the listing itself is narrowed to approved entries elsewhere.
		PublicActions: map[Action]bool{ActionList: true, ActionCreate: true},
		PublicOmit:    []string{"updated_at", "email", "approved"},
	},
	ResourceContact: {
		Resource:      ResourceContact,
		PublicActions: map[Action]bool{ActionCreate: true},
		PublicOmit:    []string{"updated_at"},
	},
}

// PolicyFor returns the static policy for a resource.
func PolicyFor(r Resource) Policy {
	return policyMatrix[r]
}
