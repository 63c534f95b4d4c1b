package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nearbuy/marketplace/internal/constants"
	"github.com/nearbuy/marketplace/internal/model"
	"github.com/nearbuy/marketplace/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger       *zap.Logger
	catalog      service.CatalogService
	transactions service.TransactionService
	chat         service.ChatService
	workflow     service.TransactionWorkflowService
	summary      service.SummaryService
}

func NewHandler(logger *zap.Logger, catalog service.CatalogService,
	transactions service.TransactionService, chat service.ChatService,
	workflow service.TransactionWorkflowService, summary service.SummaryService) *Handler {
	return &Handler{
		logger:       logger,
		catalog:      catalog,
		transactions: transactions,
		chat:         chat,
		workflow:     workflow,
		summary:      summary,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) SearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	products := h.catalog.SearchListings(c.UserContext(), query)
	return c.JSON(ProductsResponse{Products: products, Total: len(products)})
}

func (h *Handler) PublishProduct(c *fiber.Ctx) error {
	var request PublishProductRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.PublishListingCommand{
		SellerID:    request.SellerID,
		Title:       request.Title,
		Description: request.Description,
		Price:       request.Price,
		Condition:   model.Condition(request.Condition),
		ImageURL:    request.ImageURL,
		Category:    request.Category,
	}

	product, err := h.catalog.PublishListing(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.catalog.GetListing(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(product)
}

func (h *Handler) ContactSeller(c *fiber.Ctx) error {
	var request ContactSellerRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.ContactSellerCommand{ProductID: request.ProductID, BuyerID: request.BuyerID}

	txn, err := h.transactions.ContactSeller(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(txn)
}

func (h *Handler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	txn, err := h.transactions.GetTransaction(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(txn)
}

func (h *Handler) SendMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var request SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.SendMessageCommand{
		TransactionID: id,
		SenderID:      request.SenderID,
		Text:          request.Text,
	}

	txn, err := h.chat.SendText(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(txn)
}

func (h *Handler) MakeOffer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var request MakeOfferRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.MakeOfferCommand{
		TransactionID: id,
		ActorID:       request.ActorID,
		Amount:        request.Amount,
	}

	txn, err := h.workflow.MakeOffer(c.UserContext(), cmd)
	if err != nil {
		h.logger.Warn("Make offer rejected",
			zap.Int64("transactionID", id),
			zap.String("actorID", request.ActorID),
			zap.Error(err))
		return err
	}

	return c.JSON(txn)
}

func (h *Handler) AcceptOffer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var request AcceptOfferRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.AcceptOfferCommand{TransactionID: id, ActorID: request.ActorID}

	txn, err := h.workflow.AcceptOffer(c.UserContext(), cmd)
	if err != nil {
		h.logger.Warn("Accept offer rejected",
			zap.Int64("transactionID", id),
			zap.String("actorID", request.ActorID),
			zap.Error(err))
		return err
	}

	return c.JSON(txn)
}

func (h *Handler) UserProducts(c *fiber.Ctx) error {
	products, err := h.catalog.ListingsBySeller(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(ProductsResponse{Products: products, Total: len(products)})
}

func (h *Handler) UserTransactions(c *fiber.Ctx) error {
	transactions, err := h.transactions.ListForUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(TransactionsResponse{Transactions: transactions, Total: len(transactions)})
}

func (h *Handler) AdminSummary(c *fiber.Ctx) error {
	text, err := h.summary.GenerateAdminSummary(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(SummaryResponse{Summary: text})
}

func (h *Handler) ShareLink(c *fiber.Ctx) error {
	link, err := service.BuildShareLink(c.Query("url"))
	if err != nil {
		return err
	}

	return c.JSON(ShareLinkResponse{URL: link})
}

func (h *Handler) invalidBody(c *fiber.Ctx, err error) error {
	h.logger.Warn("Failed to parse body",
		zap.Error(err),
		zap.String("body", string(c.Body())))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
