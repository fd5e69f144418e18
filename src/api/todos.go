package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeadLyBro/teamly/src/structs"
)

type todoBody struct {
	Content string `json:"content"`
}

func (a *API) GetTodos(ctx context.Context, channelID string) ([]structs.Todo, error) {
	return call[[]structs.Todo](ctx, a, http.MethodGet, fmt.Sprintf("/channels/%s/todo/list", channelID), nil, "todos")
}

func (a *API) CreateTodo(ctx context.Context, channelID, content string) (*structs.Todo, error) {
	return call[*structs.Todo](ctx, a, http.MethodPost, fmt.Sprintf("/channels/%s/todo/item", channelID), todoBody{content}, "todo")
}

func (a *API) DeleteTodo(ctx context.Context, channelID, todoID string) error {
	return callNoContent(ctx, a, http.MethodDelete, fmt.Sprintf("/channels/%s/todo/item/%s", channelID, todoID), nil)
}

func (a *API) CloneTodo(ctx context.Context, channelID, todoID string) (*structs.Todo, error) {
	return call[*structs.Todo](ctx, a, http.MethodPost, fmt.Sprintf("/channels/%s/todo/item/%s/clone", channelID, todoID), nil, "todo")
}

func (a *API) UpdateTodo(ctx context.Context, channelID, todoID, content string) (*structs.Todo, error) {
	return call[*structs.Todo](ctx, a, http.MethodPut, fmt.Sprintf("/channels/%s/todo/item/%s", channelID, todoID), todoBody{content}, "todo")
}
