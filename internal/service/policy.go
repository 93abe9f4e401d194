package service

import "forum-api/internal/domain"

// accessLevel is what an action demands beyond a live session.
type accessLevel int

const (
	levelSession accessLevel = iota // any active session
	levelOwner                      // session user must own the target
	levelAdmin                      // session user must hold the admin role
)

// action pairs an operation with its policy inputs: the hint that completes
// the signed-out message, the required access level, and the message used
// when the level check fails.
type action struct {
	hint      string
	level     accessLevel
	forbidden string
}

var (
	actCreateQuestion = action{hint: "post a question"}
	actListQuestions  = action{hint: "get all questions"}
	actListByUser     = action{hint: "get all questions posted by a specific user"}
	actEditQuestion   = action{hint: "edit the question", level: levelOwner, forbidden: "Only the question owner can edit the question"}
	actDeleteQuestion = action{hint: "delete a question", level: levelOwner, forbidden: "Only the question owner can delete the question"}
	actCreateAnswer   = action{hint: "post an answer"}
	actListAnswers    = action{hint: "get the answers"}
	actEditAnswer     = action{hint: "edit an answer", level: levelOwner, forbidden: "Only the answer owner can edit the answer"}
	actDeleteAnswer   = action{hint: "delete an answer", level: levelOwner, forbidden: "Only the answer owner can delete the answer"}
	actGetUserProfile = action{hint: "get user details"}
	actDeleteUser     = action{level: levelAdmin, forbidden: "Unauthorized Access, Entered user is not an admin"}
)

// decide evaluates steps three and four of the access policy for an
// already-resolved session (the auth engine owns steps one and two:
// missing token and terminated session). The order is a published
// contract: the existence check runs before the ownership or role check,
// so an authenticated caller can always tell "it isn't there" apart from
// "it isn't yours", while unauthenticated callers learn neither.
//
// notFound is the resource-typed error to raise when the target is absent.
func decide(act action, actorID int64, actorRole domain.Role, exists bool, ownerID int64, notFound *domain.Error) error {
	if !exists {
		return notFound
	}
	switch act.level {
	case levelSession:
		return nil
	case levelOwner:
		if actorID != ownerID {
			return domain.ErrForbidden(act.forbidden)
		}
		return nil
	case levelAdmin:
		switch actorRole {
		case domain.RoleAdmin:
			return nil
		case domain.RoleMember:
			return domain.ErrForbidden(act.forbidden)
		default:
			return domain.ErrForbidden(act.forbidden)
		}
	default:
		return domain.ErrForbidden(act.forbidden)
	}
}
