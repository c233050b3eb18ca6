// Package rankserver serves anagram ranks over Connect RPC and over a
// plain-text HTTP endpoint.
package rankserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/domino14/wordrank/internal/rankstore"
	"github.com/domino14/wordrank/internal/wordrank"
)

const (
	RankServiceName = "wordrank.v1.RankService"

	RankProcedure         = "/" + RankServiceName + "/Rank"
	CombinationsProcedure = "/" + RankServiceName + "/Combinations"
)

// Server implements the RankService.
type Server struct {
	// Store is optional. When set it is checked before computing.
	Store    *rankstore.Store
	FoldCase bool
}

func timeTrack(ctx context.Context, start time.Time, name string) {
	elapsed := time.Since(start)
	zerolog.Ctx(ctx).Debug().Msgf("%s took %s", name, elapsed)
}

func (s *Server) normalize(word string) string {
	if s.FoldCase {
		return strings.ToUpper(word)
	}
	return word
}

// Lookup returns the rank entry for word, from the store if it has it.
func (s *Server) Lookup(ctx context.Context, word string) (rankstore.Entry, error) {
	word = s.normalize(word)
	if s.Store != nil {
		e, err := s.Store.Get(ctx, word)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, rankstore.ErrNotFound) {
			// Not fatal, we can still compute it.
			zerolog.Ctx(ctx).Err(err).Str("word", word).Msg("rank-store-lookup-failed")
		}
	}
	return rankstore.NewEntry(word)
}

func (s *Server) Rank(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (
	*connect.Response[wrapperspb.UInt64Value], error) {
	defer timeTrack(ctx, time.Now(), "rank")

	e, err := s.Lookup(ctx, req.Msg.GetValue())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(wrapperspb.UInt64(e.Rank)), nil
}

func (s *Server) Combinations(ctx context.Context, req *connect.Request[wrapperspb.StringValue]) (
	*connect.Response[wrapperspb.UInt64Value], error) {
	defer timeTrack(ctx, time.Now(), "combinations")

	e, err := s.Lookup(ctx, req.Msg.GetValue())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(wrapperspb.UInt64(e.Combinations)), nil
}

func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, wordrank.ErrEmptyWord):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, wordrank.ErrOverflow), errors.Is(err, wordrank.ErrRankOutOfRange):
		return connect.NewError(connect.CodeOutOfRange, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// NewRankServiceHandler builds an HTTP handler for every RankService
// procedure, and returns the path prefix to mount it on.
func NewRankServiceHandler(s *Server, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(RankProcedure, connect.NewUnaryHandler(RankProcedure, s.Rank, opts...))
	mux.Handle(CombinationsProcedure, connect.NewUnaryHandler(CombinationsProcedure, s.Combinations, opts...))
	return "/" + RankServiceName + "/", mux
}

// Client talks to a RankService.
type Client struct {
	rank         *connect.Client[wrapperspb.StringValue, wrapperspb.UInt64Value]
	combinations *connect.Client[wrapperspb.StringValue, wrapperspb.UInt64Value]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Client{
		rank: connect.NewClient[wrapperspb.StringValue, wrapperspb.UInt64Value](
			httpClient, baseURL+RankProcedure, opts...),
		combinations: connect.NewClient[wrapperspb.StringValue, wrapperspb.UInt64Value](
			httpClient, baseURL+CombinationsProcedure, opts...),
	}
}

func (c *Client) Rank(ctx context.Context, word string) (uint64, error) {
	resp, err := c.rank.CallUnary(ctx, connect.NewRequest(wrapperspb.String(word)))
	if err != nil {
		return 0, err
	}
	return resp.Msg.GetValue(), nil
}

func (c *Client) Combinations(ctx context.Context, word string) (uint64, error) {
	resp, err := c.combinations.CallUnary(ctx, connect.NewRequest(wrapperspb.String(word)))
	if err != nil {
		return 0, err
	}
	return resp.Msg.GetValue(), nil
}
