package domain

import "errors"

// Validation errors reported by the normalization policies.
var (
	// ErrMissingID indicates a row without a product identifier.
	ErrMissingID = errors.New("product id is empty")

	// ErrMissingTitle indicates a row without a display title.
	ErrMissingTitle = errors.New("product title is empty")

	// ErrMissingAffiliateLink indicates a row without an outbound affiliate link.
	ErrMissingAffiliateLink = errors.New("product affiliate link is empty")

	// ErrInvalidPromoPrice indicates a row whose promotional price is not positive.
	ErrInvalidPromoPrice = errors.New("promotional price must be greater than zero")

	// ErrDuplicateID indicates a row whose id already appeared earlier in the batch.
	ErrDuplicateID = errors.New("duplicate product id in batch")
)

// Load errors reported by the source adapters.
var (
	// ErrNoDatabaseFile indicates none of the candidate database paths was readable.
	ErrNoDatabaseFile = errors.New("no readable database file among candidate paths")

	// ErrNoTable indicates the database contains no recognizable product table.
	ErrNoTable = errors.New("no product table found in database")

	// ErrEmptyDataset indicates the source produced zero rows.
	ErrEmptyDataset = errors.New("source returned an empty dataset")
)
