package handler

import (
	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
	"researchhub/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Text     string `json:"text"`
	FileURL  string `json:"file_url,omitempty" validate:"omitempty,url"`
	FileName string `json:"file_name,omitempty"`
	FileType string `json:"file_type,omitempty"`
	FileSize int64  `json:"file_size,omitempty"`
}

// OpenConversation opens (and lazily creates) the conversation document.
func (h *ChatHandler) OpenConversation(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	conv, err := h.chatUseCase.Initialize(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conv)
}

func (h *ChatHandler) GetConversation(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	conv, err := h.chatUseCase.GetConversation(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conv)
}

func (h *ChatHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	conversations, total, err := h.chatUseCase.ListConversations(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), userID, chatID, usecase.SendMessageInput{
		Text:     req.Text,
		FileURL:  req.FileURL,
		FileName: req.FileName,
		FileType: req.FileType,
		FileSize: req.FileSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// UploadAttachment accepts a multipart file and returns the stored URL plus
// echoed metadata; the client follows up with SendMessage carrying them.
func (h *ChatHandler) UploadAttachment(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, err)
	}
	defer file.Close()

	result, err := h.chatUseCase.UploadAttachment(
		c.Request().Context(),
		userID,
		chatID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// ResolveUser returns a participant's display name, falling back to
// "Unknown User" rather than erroring.
func (h *ChatHandler) ResolveUser(c echo.Context) error {
	userID := c.Param("userId")

	name := h.chatUseCase.ResolveDisplayName(c.Request().Context(), userID)

	return response.Success(c, map[string]string{"name": name})
}
