package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/muhammadolammi/resumechat/internal/assistant"
	"github.com/muhammadolammi/resumechat/internal/chat"
)

// resumeReviewer is satisfied by agentReviewer. The server holds the
// interface so tests can script the review step.
type resumeReviewer interface {
	Review(ctx context.Context, resumeText string) (*ReviewResult, error)
}

// objectFetcher downloads a stored resume by object key. It stays nil when
// object storage is not configured.
type objectFetcher func(ctx context.Context, key string) ([]byte, error)

type server struct {
	sessions  *chat.Manager
	assistant *assistant.Assistant
	reviewer  resumeReviewer
	fetch     objectFetcher
	maxUpload int64
}

func (s *server) router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	r.GET("/api/model", func(c *gin.Context) {
		c.JSON(200, gin.H{"model": s.assistant.Model()})
	})

	r.POST("/api/sessions", func(c *gin.Context) {
		sess := s.sessions.Create()
		c.JSON(201, gin.H{"id": sess.ID})
	})

	r.DELETE("/api/sessions/:id", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		s.sessions.Remove(sess.ID)
		c.JSON(200, gin.H{"ok": true})
	})

	r.POST("/api/sessions/:id/resume", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
		file, err := c.FormFile("file")
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				c.JSON(413, gin.H{"error": "file exceeds the upload limit", "max_bytes": tooBig.Limit})
				return
			}
			c.JSON(400, gin.H{"error": "file is required"})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(500, gin.H{"error": "could not read upload"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(500, gin.H{"error": "could not read upload"})
			return
		}
		s.loadResume(c, sess, file.Filename, data)
	})

	r.POST("/api/sessions/:id/resume/object", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		if s.fetch == nil {
			c.JSON(503, gin.H{"error": "object storage is not configured"})
			return
		}
		var req fetchObjectRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
			c.JSON(400, gin.H{"error": "key is required"})
			return
		}
		data, err := s.fetch(c.Request.Context(), req.Key)
		if err != nil {
			log.Printf("⚠️ failed to fetch object %s: %v", req.Key, err)
			c.JSON(502, gin.H{"error": "could not fetch the object from storage"})
			return
		}
		s.loadResume(c, sess, path.Base(req.Key), data)
	})

	r.GET("/api/sessions/:id/resume", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		name, text, ok := sess.Resume()
		if !ok {
			c.JSON(404, gin.H{"error": "no resume uploaded"})
			return
		}
		c.JSON(200, gin.H{"name": name, "resume": text})
	})

	r.POST("/api/sessions/:id/messages", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
			c.JSON(400, gin.H{"error": "content is required"})
			return
		}
		reply, err := s.assistant.Chat(c.Request.Context(), sess, req.Content)
		if err != nil {
			log.Printf("⚠️ model call failed: %v", err)
			c.JSON(502, gin.H{"error": userMessage(err)})
			return
		}
		c.JSON(200, gin.H{"reply": reply, "model": s.assistant.Model()})
	})

	r.GET("/api/sessions/:id/messages", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		c.JSON(200, gin.H{"messages": sess.History()})
	})

	r.POST("/api/sessions/:id/review", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		if s.reviewer == nil {
			c.JSON(503, gin.H{"error": "resume review is not configured"})
			return
		}
		_, text, ok := sess.Resume()
		if !ok {
			c.JSON(400, gin.H{"error": "upload a resume before requesting a review"})
			return
		}
		result, err := s.reviewer.Review(c.Request.Context(), text)
		if err != nil {
			log.Printf("⚠️ resume review failed: %v", err)
			c.JSON(502, gin.H{"error": "resume review failed"})
			return
		}
		c.JSON(200, result)
	})

	r.POST("/api/sessions/:id/reset", func(c *gin.Context) {
		sess := s.session(c)
		if sess == nil {
			return
		}
		sess.Reset()
		c.JSON(200, gin.H{"ok": true})
	})

	return r
}

// session resolves the :id path param. It writes the 404 itself and returns
// nil when the session does not exist.
func (s *server) session(c *gin.Context) *chat.Session {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"error": "unknown session"})
		return nil
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		c.JSON(404, gin.H{"error": "unknown session"})
		return nil
	}
	return sess
}

// loadResume extracts the uploaded document into the session and reports the
// result. A failed extraction clears any previously loaded resume and comes
// back as a 400 the user can act on.
func (s *server) loadResume(c *gin.Context, sess *chat.Session, name string, data []byte) {
	md, err := s.assistant.LoadResume(sess, name, data)
	if err != nil {
		c.JSON(400, gin.H{"error": userMessage(err)})
		return
	}
	if md == "" {
		c.JSON(200, gin.H{"name": name, "resume": "", "note": "the document contained no extractable text; previous resume kept"})
		return
	}
	c.JSON(200, gin.H{"name": name, "resume": md})
}

func (s *server) run(port string) error {
	r := s.router()
	log.Printf("resumechat API listening on :%s", port)
	return r.Run(":" + port)
}
