// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
)

const usage = `usage: go-posts-client [flags] <command> [args]

commands:
  register <email> <password>
  login <email> <password>
  user <id>
  list [-limit N] [-skip N] [-search TEXT]
  get <id>
  create -title TITLE -content CONTENT [-published=false]
  update <id> -title TITLE -content CONTENT [-published=false]
  delete <id>`

type App struct {
	posts adapter.PostsClient
	out   io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp returns a client application that prints results to out.
func NewApp(posts adapter.PostsClient, out io.Writer, logger *logger.Logger) *App {
	return &App{posts: posts, out: out, logger: logger}
}

// Usage returns the command synopsis.
func Usage() string {
	return usage
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "user":
		return a.getUser(ctx, rest)
	case "list":
		return a.listPosts(ctx, rest)
	case "get":
		return a.getPost(ctx, rest)
	case "create":
		return a.createPost(ctx, rest)
	case "update":
		return a.updatePost(ctx, rest)
	case "delete":
		return a.deletePost(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: register <email> <password>", ErrUsage)
	}

	user, err := a.posts.Register(ctx, models.UserCreate{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <email> <password>", ErrUsage)
	}

	token, err := a.posts.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return a.print(token)
}

func (a *App) getUser(ctx context.Context, args []string) error {
	userID, err := parseID(args)
	if err != nil {
		return err
	}

	user, err := a.posts.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) listPosts(ctx context.Context, args []string) error {
	var filter models.PostFilter

	fs := newFlagSet("list")
	fs.Uint64Var(&filter.Limit, "limit", 0, "page size")
	fs.Uint64Var(&filter.Skip, "skip", 0, "posts to skip")
	fs.StringVar(&filter.Search, "search", "", "title substring")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	posts, err := a.posts.ListPosts(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(posts)
}

func (a *App) getPost(ctx context.Context, args []string) error {
	postID, err := parseID(args)
	if err != nil {
		return err
	}

	post, err := a.posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) createPost(ctx context.Context, args []string) error {
	input, err := parsePostInput("create", args)
	if err != nil {
		return err
	}

	post, err := a.posts.CreatePost(ctx, input)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) updatePost(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: update <id> [flags]", ErrUsage)
	}

	postID, err := parseID(args[:1])
	if err != nil {
		return err
	}
	input, err := parsePostInput("update", args[1:])
	if err != nil {
		return err
	}

	post, err := a.posts.UpdatePost(ctx, postID, input)
	if err != nil {
		return err
	}
	return a.print(post)
}

func (a *App) deletePost(ctx context.Context, args []string) error {
	postID, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.posts.DeletePost(ctx, postID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "post %d deleted\n", postID)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrUsage, args[0])
	}
	return id, nil
}

func parsePostInput(command string, args []string) (models.PostInput, error) {
	var input models.PostInput
	published := true

	fs := newFlagSet(command)
	fs.StringVar(&input.Title, "title", "", "post title")
	fs.StringVar(&input.Content, "content", "", "post content")
	fs.BoolVar(&published, "published", true, "publish the post")
	if err := fs.Parse(args); err != nil {
		return models.PostInput{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	input.Published = &published
	return input, nil
}
