package client

import (
	"github.com/DeadLyBro/teamly/src/events"
	"github.com/DeadLyBro/teamly/src/structs"
)

// Typed subscriptions. Each wraps On and asserts the argument types the
// event table guarantees for that event.

func (c *Client) OnReady(fn func(user structs.User)) events.Subscription {
	return c.On(events.Ready, func(args ...any) { fn(args[0].(structs.User)) })
}

func (c *Client) OnMessageCreate(fn func(message structs.Message)) events.Subscription {
	return c.On(events.MessageCreate, func(args ...any) { fn(args[0].(structs.Message)) })
}

func (c *Client) OnMessageUpdate(fn func(message structs.Message)) events.Subscription {
	return c.On(events.MessageUpdate, func(args ...any) { fn(args[0].(structs.Message)) })
}

func (c *Client) OnMessageDelete(fn func(messageID, channelID string)) events.Subscription {
	return c.On(events.MessageDelete, func(args ...any) { fn(args[0].(string), args[1].(string)) })
}

func (c *Client) OnChannelCreate(fn func(channel structs.Channel)) events.Subscription {
	return c.On(events.ChannelCreate, func(args ...any) { fn(args[0].(structs.Channel)) })
}

func (c *Client) OnChannelUpdate(fn func(channel structs.Channel)) events.Subscription {
	return c.On(events.ChannelUpdate, func(args ...any) { fn(args[0].(structs.Channel)) })
}

func (c *Client) OnChannelDelete(fn func(channelID, teamID string)) events.Subscription {
	return c.On(events.ChannelDelete, func(args ...any) { fn(args[0].(string), args[1].(string)) })
}

func (c *Client) OnMessageReactionAdd(fn func(messageID, emojiID string, reactedBy structs.User)) events.Subscription {
	return c.On(events.MessageReactionAdd, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(structs.User)) })
}

func (c *Client) OnMessageReactionRemove(fn func(messageID, emojiID string, reactedBy structs.User)) events.Subscription {
	return c.On(events.MessageReactionRemove, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(structs.User)) })
}

func (c *Client) OnPresenceUpdate(fn func(userID string, presence structs.Presence, rpc structs.UserRPC)) events.Subscription {
	return c.On(events.PresenceUpdate, func(args ...any) { fn(args[0].(string), args[1].(structs.Presence), args[2].(structs.UserRPC)) })
}

func (c *Client) OnTeamRoleCreate(fn func(teamID string, role structs.Role)) events.Subscription {
	return c.On(events.TeamRoleCreate, func(args ...any) { fn(args[0].(string), args[1].(structs.Role)) })
}

func (c *Client) OnTeamRoleDelete(fn func(teamID, roleID string)) events.Subscription {
	return c.On(events.TeamRoleDelete, func(args ...any) { fn(args[0].(string), args[1].(string)) })
}

func (c *Client) OnTeamRolesUpdate(fn func(teamID string, roles []structs.Role)) events.Subscription {
	return c.On(events.TeamRolesUpdate, func(args ...any) { fn(args[0].(string), args[1].([]structs.Role)) })
}

func (c *Client) OnTeamUpdate(fn func(team structs.Team)) events.Subscription {
	return c.On(events.TeamUpdate, func(args ...any) { fn(args[0].(structs.Team)) })
}

func (c *Client) OnTodoItemCreate(fn func(todo structs.Todo, channelID, teamID string)) events.Subscription {
	return c.On(events.TodoItemCreate, func(args ...any) { fn(args[0].(structs.Todo), args[1].(string), args[2].(string)) })
}

func (c *Client) OnTodoItemDelete(fn func(todoID, channelID, teamID string)) events.Subscription {
	return c.On(events.TodoItemDelete, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(string)) })
}

func (c *Client) OnTodoItemUpdate(fn func(todo structs.Todo, channelID, teamID string)) events.Subscription {
	return c.On(events.TodoItemUpdate, func(args ...any) { fn(args[0].(structs.Todo), args[1].(string), args[2].(string)) })
}

func (c *Client) OnUserJoinedTeam(fn func(member structs.User, teamID string)) events.Subscription {
	return c.On(events.UserJoinedTeam, func(args ...any) { fn(args[0].(structs.User), args[1].(string)) })
}

func (c *Client) OnUserLeftTeam(fn func(member structs.User, teamID string)) events.Subscription {
	return c.On(events.UserLeftTeam, func(args ...any) { fn(args[0].(structs.User), args[1].(string)) })
}

func (c *Client) OnUserJoinedVoiceChannel(fn func(member structs.User, channelID string)) events.Subscription {
	return c.On(events.UserJoinedVoiceChannel, func(args ...any) { fn(args[0].(structs.User), args[1].(string)) })
}

func (c *Client) OnUserLeftVoiceChannel(fn func(member structs.User, channelID string)) events.Subscription {
	return c.On(events.UserLeftVoiceChannel, func(args ...any) { fn(args[0].(structs.User), args[1].(string)) })
}

func (c *Client) OnUserProfileUpdate(fn func(user structs.User)) events.Subscription {
	return c.On(events.UserProfileUpdate, func(args ...any) { fn(args[0].(structs.User)) })
}

func (c *Client) OnUserRoleAdd(fn func(teamID string, member structs.User, role structs.Role)) events.Subscription {
	return c.On(events.UserRoleAdd, func(args ...any) { fn(args[0].(string), args[1].(structs.User), args[2].(structs.Role)) })
}

func (c *Client) OnUserRoleRemove(fn func(teamID string, member structs.User, role structs.Role)) events.Subscription {
	return c.On(events.UserRoleRemove, func(args ...any) { fn(args[0].(string), args[1].(structs.User), args[2].(structs.Role)) })
}

func (c *Client) OnUserUpdatedVoiceMetadata(fn func(user structs.User, channelID string, isStreaming, isMuted, isDeafened bool)) events.Subscription {
	return c.On(events.UserUpdatedVoiceMetadata, func(args ...any) { fn(args[0].(structs.User), args[1].(string), args[2].(bool), args[3].(bool), args[4].(bool)) })
}

func (c *Client) OnBlogCreate(fn func(blog structs.Blog)) events.Subscription {
	return c.On(events.BlogCreate, func(args ...any) { fn(args[0].(structs.Blog)) })
}

func (c *Client) OnBlogDelete(fn func(blogID, deletedBy string)) events.Subscription {
	return c.On(events.BlogDelete, func(args ...any) { fn(args[0].(string), args[1].(string)) })
}

func (c *Client) OnCategoriesPriorityUpdate(fn func(order []string)) events.Subscription {
	return c.On(events.CategoriesPriorityUpdate, func(args ...any) { fn(args[0].([]string)) })
}

func (c *Client) OnCategoryUpdate(fn func(category structs.Category)) events.Subscription {
	return c.On(events.CategoryUpdate, func(args ...any) { fn(args[0].(structs.Category)) })
}

func (c *Client) OnCategoryDelete(fn func(categoryID string)) events.Subscription {
	return c.On(events.CategoryDelete, func(args ...any) { fn(args[0].(string)) })
}

func (c *Client) OnCategoryCreate(fn func(category structs.Category)) events.Subscription {
	return c.On(events.CategoryCreate, func(args ...any) { fn(args[0].(structs.Category)) })
}

func (c *Client) OnChannelsPriorityUpdate(fn func(order []string, categoryID string)) events.Subscription {
	return c.On(events.ChannelsPriorityUpdate, func(args ...any) { fn(args[0].([]string), args[1].(string)) })
}

func (c *Client) OnAnnouncementCreate(fn func(teamID, channelID string, announcement structs.Announcement)) events.Subscription {
	return c.On(events.AnnouncementCreate, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(structs.Announcement)) })
}

func (c *Client) OnAnnouncementDelete(fn func(teamID, channelID, announcementID string)) events.Subscription {
	return c.On(events.AnnouncementDelete, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(string)) })
}

func (c *Client) OnApplicationCreate(fn func(teamID string, application structs.Application)) events.Subscription {
	return c.On(events.ApplicationCreate, func(args ...any) { fn(args[0].(string), args[1].(structs.Application)) })
}

func (c *Client) OnApplicationUpdate(fn func(teamID, changedBy string, application structs.Application)) events.Subscription {
	return c.On(events.ApplicationUpdate, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(structs.Application)) })
}

func (c *Client) OnVoiceChannelMove(fn func(userID, fromChannelID, toChannelID, teamID, token string)) events.Subscription {
	return c.On(events.VoiceChannelMove, func(args ...any) { fn(args[0].(string), args[1].(string), args[2].(string), args[3].(string), args[4].(string)) })
}

// OnDisconnect fires when the gateway connection closes, with the close
// code and reason.
func (c *Client) OnDisconnect(fn func(code int, reason string)) events.Subscription {
	return c.On(events.Disconnect, func(args ...any) { fn(args[0].(int), args[1].(string)) })
}

// OnError fires on transport failures.
func (c *Client) OnError(fn func(err error)) events.Subscription {
	return c.On(events.Error, func(args ...any) { fn(args[0].(error)) })
}
