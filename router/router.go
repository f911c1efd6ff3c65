// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/mchan/voteroom/handlers"
	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/room"
)

func NewRouter(manager *room.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	roomHandler := handlers.NewRoomHandler(manager)
	joinHandler := handlers.NewJoinHandler(manager)
	questionHandler := handlers.NewQuestionHandler(manager)
	votingHandler := handlers.NewVotingHandler(manager)
	connectHandler := handlers.NewConnectHandler(manager)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Room management
	mux.HandleFunc("POST /rooms", middleware.WithLogging(roomHandler.CreateRoom))
	mux.HandleFunc("GET /rooms/{code}", middleware.WithLogging(roomHandler.RoomInfo))

	// Join handshake
	mux.HandleFunc("POST /rooms/{code}/join", middleware.WithLogging(joinHandler.RequestJoin))
	mux.HandleFunc("GET /rooms/{code}/join-requests", middleware.WithLogging(joinHandler.ListJoinRequests))
	mux.HandleFunc("POST /rooms/{code}/join-requests", middleware.WithLogging(joinHandler.DecideJoinRequests))

	// Question lifecycle (admin operations)
	mux.HandleFunc("GET /rooms/{code}/question", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("POST /rooms/{code}/question", middleware.WithLogging(questionHandler.PostQuestion))
	mux.HandleFunc("DELETE /rooms/{code}/question", middleware.WithLogging(questionHandler.DeleteQuestion))
	mux.HandleFunc("POST /rooms/{code}/question/{questionID}/state", middleware.WithLogging(questionHandler.SetQuestionState))

	// Results and voting
	mux.HandleFunc("GET /rooms/{code}/question/{questionID}/result", middleware.WithLogging(questionHandler.GetResult))
	mux.HandleFunc("GET /rooms/{code}/question/{questionID}/votes", middleware.WithLogging(questionHandler.GetVoteCount))
	mux.HandleFunc("POST /rooms/{code}/question/{questionID}/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Live event stream
	mux.HandleFunc("GET /rooms/{code}/connect", connectHandler.Connect)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("voteroom API v1"))
	})

	return mux
}
