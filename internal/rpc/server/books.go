package server

import (
	"context"

	"github.com/MrSnakeDoc/bookhive/internal/domain"
	"github.com/MrSnakeDoc/bookhive/internal/logger"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MrSnakeDoc/bookhive/internal/rpc/booksv1"
)

// BookGetter is the slice of the book store the books servicer needs.
type BookGetter interface {
	GetDetails(ctx context.Context, id uuid.UUID) (*domain.Book, error)
}

// BooksService serves book detail lookups to other services.
type BooksService struct {
	booksv1.UnimplementedBooksServiceServer

	books  BookGetter
	logger logger.Logger
}

func NewBooksService(books BookGetter, log logger.Logger) *BooksService {
	return &BooksService{books: books, logger: log}
}

// GetBookDetails returns the summary of one book with the same error
// contract as AuthService.GetUserDetails.
func (s *BooksService) GetBookDetails(ctx context.Context, req *booksv1.GetBookDetailsRequest) (*booksv1.BookDetailsResponse, error) {
	id, err := uuid.Parse(req.GetBookId())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book id %q", req.GetBookId())
	}

	book, err := s.books.GetDetails(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, status.Errorf(codes.NotFound, "book %s not found", id)
		}
		s.logger.Error("book details lookup failed",
			logger.String("book_id", id.String()),
			logger.Error(err),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	sum := book.Summary()
	return &booksv1.BookDetailsResponse{
		BookId:    sum.BookID.String(),
		Title:     sum.Title,
		Author:    sum.Author,
		Category:  sum.Category,
		Publisher: sum.Publisher,
	}, nil
}
