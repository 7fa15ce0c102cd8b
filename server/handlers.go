package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storyroom/common"
	"storyroom/library"
	"storyroom/misc"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) fail(c *gin.Context, status int, msgID string, data map[string]string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error:     s.tr.localize(c, msgID, data),
		RequestID: c.GetString(requestIDKey),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": misc.GetVersion(),
		"uptime":  s.env.Uptime().Round(time.Second).String(),
	})
}

// listStories returns metadata of all stories, or a single story when id
// query parameter is present.
func (s *Server) listStories(c *gin.Context) {
	if id, ok := c.GetQuery("id"); ok {
		s.story(c, id)
		return
	}
	c.JSON(http.StatusOK, s.env.Library.Metadata())
}

func (s *Server) getStory(c *gin.Context) {
	s.story(c, c.Param("id"))
}

func (s *Server) story(c *gin.Context, id string) {
	story, err := s.env.Library.ByID(id)
	if errors.Is(err, library.ErrStoryNotFound) {
		s.fail(c, http.StatusNotFound, "StoryNotFound", nil)
		return
	}
	if err != nil {
		s.log.Error("Unable to get story", zap.String("id", id), zap.Error(err))
		s.fail(c, http.StatusInternalServerError, "InternalError", nil)
		return
	}
	c.JSON(http.StatusOK, story)
}

func (s *Server) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, s.env.Rooms.All())
}

func (s *Server) roomStories(c *gin.Context) {
	id := c.Param("id")
	if !s.env.Rooms.Has(id) {
		s.fail(c, http.StatusNotFound, "RoomNotFound", map[string]string{"ID": id})
		return
	}
	c.JSON(http.StatusOK, s.env.Library.InRoom(id))
}

type emotionInfo struct {
	Emotion common.Emotion `json:"emotion"`
	Palette common.Palette `json:"palette"`
}

func (s *Server) listEmotions(c *gin.Context) {
	values := common.EmotionValues()
	res := make([]emotionInfo, 0, len(values))
	for _, e := range values {
		res = append(res, emotionInfo{Emotion: e, Palette: e.Palette()})
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) ambientState(c *gin.Context) {
	c.JSON(http.StatusOK, s.env.Ambient.Snapshot())
}

// contextRequest selects ambient context, absent or null room means default.
type contextRequest struct {
	Room *string `json:"room"`
}

func (s *Server) ambientCommand(c *gin.Context) {
	name := c.Param("command")
	cmd, err := common.ParseAmbientCommand(name)
	if err != nil {
		s.fail(c, http.StatusNotFound, "UnknownCommand", map[string]string{"Command": name})
		return
	}

	var req contextRequest
	if cmd == common.AmbientCommandContext {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			s.fail(c, http.StatusBadRequest, "BadRequest", nil)
			return
		}
		if req.Room != nil && !s.env.Rooms.Has(*req.Room) {
			s.fail(c, http.StatusNotFound, "RoomNotFound", map[string]string{"ID": *req.Room})
			return
		}
	}

	if err := s.env.Ambient.Execute(cmd, req.Room); err != nil {
		s.log.Error("Ambient command failed", zap.Stringer("command", cmd), zap.Error(err))
		s.fail(c, http.StatusInternalServerError, "InternalError", nil)
		return
	}
	c.JSON(http.StatusOK, s.env.Ambient.Snapshot())
}
