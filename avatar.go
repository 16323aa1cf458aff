package ubiart

// UnlockKind is the canonical policy by which an avatar is unlocked.
type UnlockKind uint8

const (
	// The code of the avatar has no canonical equivalent.
	UnlockUnknown UnlockKind = iota
	// Available from the start.
	UnlockDefault
	// Unlocked by playing the song the avatar belongs to.
	UnlockPlaySong
	// Won from the gift machine.
	UnlockGift
	// Unlocked through an online account.
	UnlockAccount
	// Unlocked by completing a quest.
	UnlockQuest
	// Unlocked in World Dance Floor.
	UnlockWDF
	// Unlocked by completing an objective.
	UnlockObjective
	// Unlocked with a subscription to the streaming service.
	UnlockSubscription
)

func (k UnlockKind) String() string {
	switch k {
	case UnlockDefault:
		return "Default"
	case UnlockPlaySong:
		return "PlaySong"
	case UnlockGift:
		return "Gift"
	case UnlockAccount:
		return "Account"
	case UnlockQuest:
		return "Quest"
	case UnlockWDF:
		return "WDF"
	case UnlockObjective:
		return "Objective"
	case UnlockSubscription:
		return "Subscription"
	}
	return "Unknown"
}

// UnlockType is the canonical unlock policy of an avatar.
type UnlockType struct {
	Kind UnlockKind

	// Code is the numeric unlock code the policy was derived from.
	Code uint32

	// Objective is the id of the objective that unlocks the avatar. Set only
	// when Kind is UnlockObjective.
	Objective string
}

// MinAvatarDesc is the canonical avatar descriptor shared by every release.
type MinAvatarDesc struct {
	AvatarID uint32

	// SoundFamily is empty for releases that predate the field.
	SoundFamily string

	Status     uint32
	UnlockType UnlockType

	// ActorPath is the path of the actor template of the avatar.
	ActorPath string
}
