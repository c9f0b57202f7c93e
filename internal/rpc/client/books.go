package client

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MrSnakeDoc/bookhive/internal/rpc/booksv1"
)

// BookDirectory resolves book summaries from the books service.
type BookDirectory struct {
	client  booksv1.BooksServiceClient
	timeout time.Duration
	logger  logger.Logger
}

func NewBookDirectory(conn *grpc.ClientConn, timeout time.Duration, log logger.Logger) *BookDirectory {
	return &BookDirectory{
		client:  booksv1.NewBooksServiceClient(conn),
		timeout: timeout,
		logger:  log,
	}
}

// Lookup fetches the summary for one book, with the same absent vs
// unreachable split as UserDirectory.Lookup.
func (d *BookDirectory) Lookup(ctx context.Context, bookID uuid.UUID) (*domain.BookSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.GetBookDetails(ctx, &booksv1.GetBookDetailsRequest{BookId: bookID.String()})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &domain.NotFoundError{Entity: "book", ID: bookID.String()}
		}
		d.logger.Warn("book lookup failed",
			logger.String("book_id", bookID.String()),
			logger.Error(err),
		)
		return nil, &domain.RemoteUnavailableError{Service: "books", Err: err}
	}

	id, err := uuid.Parse(resp.GetBookId())
	if err != nil {
		return nil, &domain.RemoteUnavailableError{Service: "books", Err: err}
	}
	return &domain.BookSummary{
		BookID:    id,
		Title:     resp.GetTitle(),
		Author:    resp.GetAuthor(),
		Category:  resp.GetCategory(),
		Publisher: resp.GetPublisher(),
	}, nil
}
