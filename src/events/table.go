package events

import (
	"fmt"

	"github.com/DeadLyBro/teamly/src/structs"
)

// Name is a public, subscriber-facing event name.
type Name = string

const (
	Ready                    Name = "ready"
	MessageCreate            Name = "messageCreate"
	MessageUpdate            Name = "messageUpdate"
	MessageDelete            Name = "messageDelete"
	ChannelCreate            Name = "channelCreate"
	ChannelUpdate            Name = "channelUpdate"
	ChannelDelete            Name = "channelDelete"
	MessageReactionAdd       Name = "messageReactionAdd"
	MessageReactionRemove    Name = "messageReactionRemove"
	PresenceUpdate           Name = "presenceUpdate"
	TeamRoleCreate           Name = "teamRoleCreate"
	TeamRoleDelete           Name = "teamRoleDelete"
	TeamRolesUpdate          Name = "teamRolesUpdate"
	TeamUpdate               Name = "teamUpdate"
	TodoItemCreate           Name = "todoItemCreate"
	TodoItemDelete           Name = "todoItemDelete"
	TodoItemUpdate           Name = "todoItemUpdate"
	UserJoinedTeam           Name = "userJoinedTeam"
	UserLeftTeam             Name = "userLeftTeam"
	UserJoinedVoiceChannel   Name = "userJoinedVoiceChannel"
	UserLeftVoiceChannel     Name = "userLeftVoiceChannel"
	UserProfileUpdate        Name = "userProfileUpdate"
	UserRoleAdd              Name = "userRoleAdd"
	UserRoleRemove           Name = "userRoleRemove"
	UserUpdatedVoiceMetadata Name = "userUpdatedVoiceMetadata"
	BlogCreate               Name = "blogCreate"
	BlogDelete               Name = "blogDelete"
	CategoriesPriorityUpdate Name = "categoriesPriorityUpdate"
	CategoryUpdate           Name = "categoryUpdate"
	CategoryDelete           Name = "categoryDelete"
	CategoryCreate           Name = "categoryCreate"
	ChannelsPriorityUpdate   Name = "channelsPriorityUpdate"
	AnnouncementCreate       Name = "announcementCreate"
	AnnouncementDelete       Name = "announcementDelete"
	ApplicationCreate        Name = "applicationCreate"
	ApplicationUpdate        Name = "applicationUpdate"
	VoiceChannelMove         Name = "voiceChannelMove"

	// Lifecycle events raised by the client itself, not by a gateway tag.
	Disconnect Name = "disconnect"
	Error      Name = "error"
)

// Gateway tag of the session-ready frame.
const TagReady = "READY"

// Field extracts one positional argument from a frame payload.
type Field struct {
	Key    string
	zero   func() any
	decode func(structs.Payload) (any, error)
}

// Zero returns the zero value of the field's Go type.
func (f Field) Zero() any { return f.zero() }

// Of declares a field read from key and decoded as T.
func Of[T any](key string) Field {
	return Field{
		Key: key,
		zero: func() any {
			var v T
			return v
		},
		decode: func(p structs.Payload) (any, error) {
			var v T
			if err := p.Decode(key, &v); err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// Mapping binds a gateway tag to a public event and the ordered fields
// passed to its subscribers.
type Mapping struct {
	Tag    string
	Event  Name
	Fields []Field
}

// Extract decodes the mapping's fields from p, in declaration order.
// Missing fields yield their zero value.
func (m Mapping) Extract(p structs.Payload) ([]any, error) {
	args := make([]any, 0, len(m.Fields))
	for _, field := range m.Fields {
		v, err := field.decode(p)
		if err != nil {
			return nil, fmt.Errorf("events: %s: %w", m.Tag, err)
		}
		args = append(args, v)
	}
	return args, nil
}

// Table is the complete tag to event mapping.
var Table = []Mapping{
	{TagReady, Ready, []Field{Of[structs.User]("user")}},
	{"MESSAGE_SEND", MessageCreate, []Field{Of[structs.Message]("message")}},
	{"MESSAGE_UPDATED", MessageUpdate, []Field{Of[structs.Message]("message")}},
	{"MESSAGE_DELETED", MessageDelete, []Field{Of[string]("messageId"), Of[string]("channelId")}},
	{"CHANNEL_CREATED", ChannelCreate, []Field{Of[structs.Channel]("channel")}},
	{"CHANNEL_UPDATED", ChannelUpdate, []Field{Of[structs.Channel]("channel")}},
	{"CHANNEL_DELETED", ChannelDelete, []Field{Of[string]("channelId"), Of[string]("teamId")}},
	{"MESSAGE_REACTION_ADDED", MessageReactionAdd, []Field{Of[string]("messageId"), Of[string]("emojiId"), Of[structs.User]("reactedBy")}},
	{"MESSAGE_REACTION_REMOVED", MessageReactionRemove, []Field{Of[string]("messageId"), Of[string]("emojiId"), Of[structs.User]("reactedBy")}},
	{"PRESENCE_UPDATE", PresenceUpdate, []Field{Of[string]("userId"), Of[int]("presence"), Of[structs.UserRPC]("userRPC")}},
	{"TEAM_ROLE_CREATED", TeamRoleCreate, []Field{Of[string]("teamId"), Of[structs.Role]("role")}},
	{"TEAM_ROLE_DELETED", TeamRoleDelete, []Field{Of[string]("teamId"), Of[string]("roleId")}},
	{"TEAM_ROLES_UPDATED", TeamRolesUpdate, []Field{Of[string]("teamId"), Of[[]structs.Role]("roles")}},
	{"TEAM_UPDATED", TeamUpdate, []Field{Of[structs.Team]("team")}},
	{"TODO_ITEM_CREATED", TodoItemCreate, []Field{Of[structs.Todo]("todo"), Of[string]("channelId"), Of[string]("teamId")}},
	{"TODO_ITEM_DELETED", TodoItemDelete, []Field{Of[string]("todoId"), Of[string]("channelId"), Of[string]("teamId")}},
	{"TODO_ITEM_UPDATED", TodoItemUpdate, []Field{Of[structs.Todo]("todo"), Of[string]("channelId"), Of[string]("teamId")}},
	{"USER_JOINED_TEAM", UserJoinedTeam, []Field{Of[structs.User]("member"), Of[string]("teamId")}},
	{"USER_LEFT_TEAM", UserLeftTeam, []Field{Of[structs.User]("member"), Of[string]("teamId")}},
	{"USER_JOINED_VOICE_CHANNEL", UserJoinedVoiceChannel, []Field{Of[structs.User]("member"), Of[string]("channelId")}},
	{"USER_LEFT_VOICE_CHANNEL", UserLeftVoiceChannel, []Field{Of[structs.User]("member"), Of[string]("channelId")}},
	{"USER_PROFILE_UPDATED", UserProfileUpdate, []Field{Of[structs.User]("user")}},
	{"USER_ROLE_ADDED", UserRoleAdd, []Field{Of[string]("teamId"), Of[structs.User]("member"), Of[structs.Role]("role")}},
	{"USER_ROLE_REMOVED", UserRoleRemove, []Field{Of[string]("teamId"), Of[structs.User]("member"), Of[structs.Role]("role")}},
	{"USER_UPDATED_VOICE_METADATA", UserUpdatedVoiceMetadata, []Field{Of[structs.User]("user"), Of[string]("channelId"), Of[bool]("isStreaming"), Of[bool]("isMuted"), Of[bool]("isDeafened")}},
	{"BLOG_CREATED", BlogCreate, []Field{Of[structs.Blog]("blog")}},
	{"BLOG_DELETED", BlogDelete, []Field{Of[string]("blogId"), Of[string]("deletedBy")}},
	{"CATEGORIES_PRIORITY_UPDATED", CategoriesPriorityUpdate, []Field{Of[[]string]("order")}},
	{"CATEGORY_UPDATED", CategoryUpdate, []Field{Of[structs.Category]("category")}},
	{"CATEGORY_DELETED", CategoryDelete, []Field{Of[string]("categoryId")}},
	{"CATEGORY_CREATED", CategoryCreate, []Field{Of[structs.Category]("category")}},
	{"CHANNELS_PRIORITY_UPDATED", ChannelsPriorityUpdate, []Field{Of[[]string]("order"), Of[string]("categoryId")}},
	{"ANNOUNCEMENT_CREATED", AnnouncementCreate, []Field{Of[string]("teamId"), Of[string]("channelId"), Of[structs.Announcement]("announcement")}},
	{"ANNOUNCEMENT_DELETED", AnnouncementDelete, []Field{Of[string]("teamId"), Of[string]("channelId"), Of[string]("announcementId")}},
	{"APPLICATION_CREATED", ApplicationCreate, []Field{Of[string]("teamId"), Of[structs.Application]("application")}},
	{"APPLICATION_UPDATED", ApplicationUpdate, []Field{Of[string]("teamId"), Of[string]("changedBy"), Of[structs.Application]("application")}},
	{"VOICE_CHANNEL_MOVE", VoiceChannelMove, []Field{Of[string]("userId"), Of[string]("fromChannelId"), Of[string]("toChannelId"), Of[string]("teamId"), Of[string]("token")}},
}

var byTag = func() map[string]Mapping {
	m := make(map[string]Mapping, len(Table))
	for _, mapping := range Table {
		m[mapping.Tag] = mapping
	}
	return m
}()

// Lookup returns the mapping for a gateway tag.
func Lookup(tag string) (Mapping, bool) {
	m, ok := byTag[tag]
	return m, ok
}
