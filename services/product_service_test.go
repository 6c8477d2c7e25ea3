package services

import (
	"errors"
	"testing"

	"github.com/Francesco-Napolitano/WebAppApi/models"
	"github.com/Francesco-Napolitano/WebAppApi/utils"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	return &ProductService{db: newTestDB(t)}
}

func TestProductService_CreateAndGet(t *testing.T) {
	s := newProductService(t)

	mustCreate(t, s.db, &models.Brand{Code: "B1", Description: "brand"})
	mustCreate(t, s.db, &models.Collection{BrandID: 1, Code: "C1", Description: "collection"})

	input := &models.Product{
		Code:                "P1",
		Description:         "a product",
		ExtendedDescription: strPtr("a longer description"),
		BrandID:             intPtr(1),
		CollectionID:        intPtr(1),
	}

	created, err := s.CreateProduct(input)
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("CreateProduct() did not assign an id")
	}

	got, err := s.GetProductByID(created.ID)
	if err != nil {
		t.Fatalf("GetProductByID() error = %v", err)
	}
	if got.Code != "P1" || got.Description != "a product" {
		t.Errorf("got code=%q description=%q, want P1 / a product", got.Code, got.Description)
	}
	if got.ExtendedDescription == nil || *got.ExtendedDescription != "a longer description" {
		t.Errorf("ExtendedDescription = %v, want 'a longer description'", got.ExtendedDescription)
	}
	if got.BrandID == nil || *got.BrandID != 1 || got.Brand == nil || got.Brand.Code != "B1" {
		t.Errorf("brand not attached: id=%v brand=%v", got.BrandID, got.Brand)
	}
	if got.CollectionID == nil || *got.CollectionID != 1 || got.Collection == nil {
		t.Errorf("collection not attached: id=%v collection=%v", got.CollectionID, got.Collection)
	}
}

func TestProductService_CreateValidation(t *testing.T) {
	t.Run("duplicate code conflicts", func(t *testing.T) {
		s := newProductService(t)

		if _, err := s.CreateProduct(&models.Product{Code: "P1", Description: "d"}); err != nil {
			t.Fatalf("first CreateProduct() error = %v", err)
		}
		_, err := s.CreateProduct(&models.Product{Code: "P1", Description: "other"})
		if !errors.Is(err, utils.ErrConflict) {
			t.Errorf("CreateProduct() error = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown brand rejected", func(t *testing.T) {
		s := newProductService(t)

		_, err := s.CreateProduct(&models.Product{Code: "P1", Description: "d", BrandID: intPtr(99)})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("CreateProduct() error = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown collection rejected", func(t *testing.T) {
		s := newProductService(t)

		_, err := s.CreateProduct(&models.Product{Code: "P1", Description: "d", CollectionID: intPtr(99)})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("CreateProduct() error = %v, want ErrValidation", err)
		}
	})

	t.Run("embedded relations are stripped", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Brand{Code: "B1", Description: "brand"})

		input := &models.Product{
			Code:        "P1",
			Description: "d",
			BrandID:     intPtr(1),
			Brand:       &models.Brand{Code: "SNEAKY", Description: "should not be created"},
		}
		if _, err := s.CreateProduct(input); err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}

		if n := countRows(t, s.db, &models.Brand{}, "1 = 1"); n != 1 {
			t.Errorf("brand count = %d, want 1 (embedded brand must not be inserted)", n)
		}
	})
}

func TestProductService_Update(t *testing.T) {
	t.Run("id mismatch rejected", func(t *testing.T) {
		s := newProductService(t)

		err := s.UpdateProduct(1, &models.Product{ID: 2, Code: "P1", Description: "d"})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("UpdateProduct() error = %v, want ErrValidation", err)
		}
	})

	t.Run("missing product not found", func(t *testing.T) {
		s := newProductService(t)

		err := s.UpdateProduct(7, &models.Product{ID: 7, Code: "P1", Description: "d"})
		if !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("UpdateProduct() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("code taken by another product conflicts", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		mustCreate(t, s.db, &models.Product{Code: "P2", Description: "d"})

		err := s.UpdateProduct(2, &models.Product{ID: 2, Code: "P1", Description: "d"})
		if !errors.Is(err, utils.ErrConflict) {
			t.Errorf("UpdateProduct() error = %v, want ErrConflict", err)
		}
	})

	t.Run("recasing own code succeeds", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "abc", Description: "d"})

		// Case-insensitively unchanged, so the uniqueness re-check is
		// skipped and the save goes through.
		if err := s.UpdateProduct(1, &models.Product{ID: 1, Code: "ABC", Description: "d"}); err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}

		got, err := s.GetProductByID(1)
		if err != nil {
			t.Fatalf("GetProductByID() error = %v", err)
		}
		if got.Code != "ABC" {
			t.Errorf("code = %q, want ABC", got.Code)
		}
	})

	t.Run("mutable fields applied, immutable kept", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Brand{Code: "B1", Description: "brand"})
		created, err := s.CreateProduct(&models.Product{Code: "P1", Description: "old"})
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}

		update := &models.Product{
			ID:                  created.ID,
			Code:                "P1-NEW",
			Description:         "new",
			ExtendedDescription: strPtr("extended"),
			BrandID:             intPtr(1),
		}
		if err := s.UpdateProduct(created.ID, update); err != nil {
			t.Fatalf("UpdateProduct() error = %v", err)
		}

		got, err := s.GetProductByID(created.ID)
		if err != nil {
			t.Fatalf("GetProductByID() error = %v", err)
		}
		if got.Code != "P1-NEW" || got.Description != "new" {
			t.Errorf("got code=%q description=%q after update", got.Code, got.Description)
		}
		if got.BrandID == nil || *got.BrandID != 1 {
			t.Errorf("BrandID = %v, want 1", got.BrandID)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("CreatedAt changed on update: %v != %v", got.CreatedAt, created.CreatedAt)
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("missing product not found", func(t *testing.T) {
		s := newProductService(t)

		if err := s.DeleteProduct(42); !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("DeleteProduct() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("links cascade, files survive", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		if _, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/a/b.png"}}); err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		if err := s.DeleteProduct(1); err != nil {
			t.Fatalf("DeleteProduct() error = %v", err)
		}

		if _, err := s.GetProductByID(1); !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("GetProductByID() after delete error = %v, want ErrNotFound", err)
		}
		if n := countRows(t, s.db, &models.ProductFile{}, "product_id = ?", 1); n != 0 {
			t.Errorf("link count = %d, want 0 after cascade", n)
		}
		if n := countRows(t, s.db, &models.File{}, "absolute_path = ?", "/a/b.png"); n != 1 {
			t.Errorf("file count = %d, want 1 (files are never deleted with the product)", n)
		}
	})
}

func TestProductService_AttachFiles(t *testing.T) {
	t.Run("missing product not found", func(t *testing.T) {
		s := newProductService(t)

		_, err := s.AttachFiles(9, []FileAttachment{{AbsolutePath: "/x"}})
		if !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("AttachFiles() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		_, err := s.AttachFiles(1, nil)
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("AttachFiles() error = %v, want ErrValidation", err)
		}
	})

	t.Run("by path creates file with defaulted name", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})

		added, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/x/y/z.png"}})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}
		if len(added) != 1 {
			t.Fatalf("len(added) = %d, want 1", len(added))
		}
		if !added[0].Linked {
			t.Error("Linked = false, want true on first attach")
		}
		if added[0].FileName != "z.png" {
			t.Errorf("FileName = %q, want z.png (defaulted from path)", added[0].FileName)
		}
		if added[0].AbsolutePath != "/x/y/z.png" {
			t.Errorf("AbsolutePath = %q", added[0].AbsolutePath)
		}
	})

	t.Run("same path twice reuses file and reports already linked", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})

		first, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/x/y/z.png"}})
		if err != nil {
			t.Fatalf("first AttachFiles() error = %v", err)
		}
		second, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/x/y/z.png"}})
		if err != nil {
			t.Fatalf("second AttachFiles() error = %v", err)
		}

		if second[0].ID != first[0].ID {
			t.Errorf("second attach used file %d, want reuse of %d", second[0].ID, first[0].ID)
		}
		if second[0].Linked {
			t.Error("Linked = true on second attach, want false")
		}
		if second[0].Reason != "already linked" {
			t.Errorf("Reason = %q, want 'already linked'", second[0].Reason)
		}
		if n := countRows(t, s.db, &models.ProductFile{}, "product_id = ? AND file_id = ?", 1, first[0].ID); n != 1 {
			t.Errorf("link count = %d, want exactly 1", n)
		}
		if n := countRows(t, s.db, &models.File{}, "absolute_path = ?", "/x/y/z.png"); n != 1 {
			t.Errorf("file count = %d, want exactly 1", n)
		}
	})

	t.Run("by id requires an existing file", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		_, err := s.AttachFiles(1, []FileAttachment{{FileID: intPtr(123)}})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("AttachFiles() error = %v, want ErrValidation", err)
		}
	})

	t.Run("by id links an existing file", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		mustCreate(t, s.db, &models.File{FileName: "doc.pdf", AbsolutePath: "/docs/doc.pdf"})

		added, err := s.AttachFiles(1, []FileAttachment{{FileID: intPtr(1)}})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}
		if !added[0].Linked || added[0].FileName != "doc.pdf" {
			t.Errorf("added = %+v, want linked doc.pdf", added[0])
		}
	})

	t.Run("path required without id", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		_, err := s.AttachFiles(1, []FileAttachment{{FileName: "orphan.txt"}})
		if !errors.Is(err, utils.ErrValidation) {
			t.Errorf("AttachFiles() error = %v, want ErrValidation", err)
		}
	})

	t.Run("items processed in order, earlier items stay committed", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})

		_, err := s.AttachFiles(1, []FileAttachment{
			{AbsolutePath: "/ok/first.png"},
			{FileID: intPtr(999)},
		})
		if !errors.Is(err, utils.ErrValidation) {
			t.Fatalf("AttachFiles() error = %v, want ErrValidation", err)
		}

		// The batch is not atomic: the first item's file and link exist.
		if n := countRows(t, s.db, &models.File{}, "absolute_path = ?", "/ok/first.png"); n != 1 {
			t.Errorf("file count = %d, want 1 from the committed first item", n)
		}
		if n := countRows(t, s.db, &models.ProductFile{}, "product_id = ?", 1); n != 1 {
			t.Errorf("link count = %d, want 1 from the committed first item", n)
		}
	})
}

func TestProductService_GetFilesForProduct(t *testing.T) {
	t.Run("missing product not found", func(t *testing.T) {
		s := newProductService(t)

		if _, err := s.GetFilesForProduct(3); !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("GetFilesForProduct() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("lists linked files", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		if _, err := s.AttachFiles(1, []FileAttachment{
			{AbsolutePath: "/a/one.png"},
			{AbsolutePath: "/a/two.png"},
		}); err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		files, err := s.GetFilesForProduct(1)
		if err != nil {
			t.Fatalf("GetFilesForProduct() error = %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("len(files) = %d, want 2", len(files))
		}
		if files[0].FileName != "one.png" || files[0].AbsolutePath != "/a/one.png" {
			t.Errorf("files[0] = %+v", files[0])
		}
		if files[0].FileID == 0 {
			t.Error("FileID not populated")
		}
	})
}

func TestProductService_RemoveFile(t *testing.T) {
	t.Run("missing link not found", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		if err := s.RemoveFile(1, 5, false); !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("RemoveFile() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("removeFile deletes an orphaned file record", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		added, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/x/y/z.png"}})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		if err := s.RemoveFile(1, added[0].ID, true); err != nil {
			t.Fatalf("RemoveFile() error = %v", err)
		}

		if n := countRows(t, s.db, &models.File{}, "id = ?", added[0].ID); n != 0 {
			t.Errorf("file count = %d, want 0 after orphan cleanup", n)
		}
	})

	t.Run("removeFile keeps a file still linked elsewhere", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		mustCreate(t, s.db, &models.Product{Code: "P2", Description: "d"})
		added, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/shared.png"}})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}
		if _, err := s.AttachFiles(2, []FileAttachment{{FileID: intPtr(added[0].ID)}}); err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		if err := s.RemoveFile(1, added[0].ID, true); err != nil {
			t.Fatalf("RemoveFile() error = %v", err)
		}

		if n := countRows(t, s.db, &models.File{}, "id = ?", added[0].ID); n != 1 {
			t.Errorf("file count = %d, want 1 (still linked to product 2)", n)
		}
	})

	t.Run("without removeFile the file record stays", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		added, err := s.AttachFiles(1, []FileAttachment{{AbsolutePath: "/keep.png"}})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		if err := s.RemoveFile(1, added[0].ID, false); err != nil {
			t.Fatalf("RemoveFile() error = %v", err)
		}

		if n := countRows(t, s.db, &models.File{}, "id = ?", added[0].ID); n != 1 {
			t.Errorf("file count = %d, want 1", n)
		}
	})
}

func TestProductService_RemoveFiles(t *testing.T) {
	t.Run("empty ids rejected", func(t *testing.T) {
		s := newProductService(t)

		if err := s.RemoveFiles(1, nil, false); !errors.Is(err, utils.ErrValidation) {
			t.Errorf("RemoveFiles() error = %v, want ErrValidation", err)
		}
	})

	t.Run("no matching links not found", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		if err := s.RemoveFiles(1, []int{8, 9}, false); !errors.Is(err, utils.ErrNotFound) {
			t.Errorf("RemoveFiles() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("batch delete with orphan cleanup", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		mustCreate(t, s.db, &models.Product{Code: "P2", Description: "d"})

		added, err := s.AttachFiles(1, []FileAttachment{
			{AbsolutePath: "/a.png"},
			{AbsolutePath: "/b.png"},
		})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}
		// Second product keeps /b.png alive.
		if _, err := s.AttachFiles(2, []FileAttachment{{FileID: intPtr(added[1].ID)}}); err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		ids := []int{added[0].ID, added[1].ID}
		if err := s.RemoveFiles(1, ids, true); err != nil {
			t.Fatalf("RemoveFiles() error = %v", err)
		}

		if n := countRows(t, s.db, &models.ProductFile{}, "product_id = ?", 1); n != 0 {
			t.Errorf("link count for product 1 = %d, want 0", n)
		}
		if n := countRows(t, s.db, &models.File{}, "id = ?", added[0].ID); n != 0 {
			t.Errorf("orphaned file %d still present", added[0].ID)
		}
		if n := countRows(t, s.db, &models.File{}, "id = ?", added[1].ID); n != 1 {
			t.Errorf("file %d deleted despite remaining link", added[1].ID)
		}
	})

	t.Run("cleanup also covers requested ids orphaned earlier", func(t *testing.T) {
		s := newProductService(t)

		mustCreate(t, s.db, &models.Product{Code: "P1", Description: "d"})
		added, err := s.AttachFiles(1, []FileAttachment{
			{AbsolutePath: "/a.png"},
			{AbsolutePath: "/b.png"},
		})
		if err != nil {
			t.Fatalf("AttachFiles() error = %v", err)
		}

		// Detach /b.png first without cleanup, leaving it orphaned.
		if err := s.RemoveFile(1, added[1].ID, false); err != nil {
			t.Fatalf("RemoveFile() error = %v", err)
		}

		// The bulk call matches only /a.png's link but checks both ids.
		if err := s.RemoveFiles(1, []int{added[0].ID, added[1].ID}, true); err != nil {
			t.Fatalf("RemoveFiles() error = %v", err)
		}

		if n := countRows(t, s.db, &models.File{}, "id IN ?", []int{added[0].ID, added[1].ID}); n != 0 {
			t.Errorf("file count = %d, want 0 (both requested ids orphaned)", n)
		}
	})
}
