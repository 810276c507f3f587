// Package cli is the interactive terminal shell over the catalog engine. It
// only collects and validates operator input and renders results; every rule
// lives in the engine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tvstore/catalog/internal/catalog"
	"github.com/tvstore/catalog/internal/domain"
)

// Menu drives one operator session. Reader and writer are injected so tests
// can script a session.
type Menu struct {
	engine *catalog.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func NewMenu(engine *catalog.Engine, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

const menuText = `
TV Store Catalog
 1) Create product
 2) Display products
 3) Update product
 4) Remove product
 5) Create brand
 6) Update brand
 7) Remove brand
 8) Create category
 9) Update category
10) Remove category
 0) Exit
`

// Run loops until the operator exits or input runs out. Operation failures
// are rendered and the menu continues; only a dead input stream ends the
// session.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.readLine("Select an action: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = m.createProduct(ctx)
		case "2":
			err = m.displayProducts(ctx)
		case "3":
			err = m.updateProduct(ctx)
		case "4":
			err = m.removeProduct(ctx)
		case "5":
			err = m.createBrand(ctx)
		case "6":
			err = m.updateBrand(ctx)
		case "7":
			err = m.removeBrand(ctx)
		case "8":
			err = m.createCategory(ctx)
		case "9":
			err = m.updateCategory(ctx)
		case "10":
			err = m.removeCategory(ctx)
		case "0", "exit":
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown action")
			continue
		}
		if err != nil {
			if err == errInputClosed {
				return nil
			}
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

var errInputClosed = fmt.Errorf("input closed")

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptString re-prompts until a non-empty value arrives. An empty default
// means the field is required.
func (m *Menu) promptString(label, def string) (string, error) {
	for {
		prompt := fmt.Sprintf("%s: ", label)
		if def != "" {
			prompt = fmt.Sprintf("%s [%s]: ", label, def)
		}
		line, ok := m.readLine(prompt)
		if !ok {
			return "", errInputClosed
		}
		if line == "" {
			if def != "" {
				return def, nil
			}
			fmt.Fprintln(m.out, "A value is required")
			continue
		}
		return line, nil
	}
}

func (m *Menu) promptInt(label string, def *int) (int, error) {
	for {
		prompt := fmt.Sprintf("%s: ", label)
		if def != nil {
			prompt = fmt.Sprintf("%s [%d]: ", label, *def)
		}
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, errInputClosed
		}
		if line == "" && def != nil {
			return *def, nil
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a whole number")
			continue
		}
		return value, nil
	}
}

func (m *Menu) promptFloat(label string, def *float64) (float64, error) {
	for {
		prompt := fmt.Sprintf("%s: ", label)
		if def != nil {
			prompt = fmt.Sprintf("%s [%g]: ", label, *def)
		}
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, errInputClosed
		}
		if line == "" && def != nil {
			return *def, nil
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number")
			continue
		}
		return value, nil
	}
}

// pick renders the id+name pairs and re-prompts until the operator names one
// of the listed ids.
func (m *Menu) pick(label string, records []domain.ShortRecord) (int, error) {
	valid := make(map[int]bool, len(records))
	for _, r := range records {
		fmt.Fprintf(m.out, "  %d) %s\n", r.ID, r.Name)
		valid[r.ID] = true
	}
	for {
		id, err := m.promptInt(label, nil)
		if err != nil {
			return 0, err
		}
		if valid[id] {
			return id, nil
		}
		fmt.Fprintln(m.out, "Please pick one of the listed ids")
	}
}

// ------------------ Products ------------------

func (m *Menu) createProduct(ctx context.Context) error {
	categories, err := m.engine.ListCategoriesShort(ctx)
	if err != nil {
		return err
	}
	brands, err := m.engine.ListBrandsShort(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 || len(brands) == 0 {
		fmt.Fprintln(m.out, "Create at least one brand and one category first")
		return nil
	}

	fmt.Fprintln(m.out, "Which category does the product belong to?")
	categoryID, err := m.pick("Category id", categories)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Which company does the product belong to?")
	brandID, err := m.pick("Brand id", brands)
	if err != nil {
		return err
	}

	in := domain.ProductInput{BrandID: brandID, CategoryID: categoryID}
	if in.Name, err = m.promptString("Product name", ""); err != nil {
		return err
	}
	if in.Price, err = m.promptFloat("Price", nil); err != nil {
		return err
	}
	if in.Quantity, err = m.promptInt("Quantity", nil); err != nil {
		return err
	}
	if in.Diagonal, err = m.promptFloat("Diagonal (inches)", nil); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", "-"); err != nil {
		return err
	}

	product, err := m.engine.CreateProduct(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Product %d successfully added!\n", product.ProductID)
	return nil
}

func (m *Menu) displayProducts(ctx context.Context) error {
	choice, ok := m.readLine("Filter products by (all/brand/category): ")
	if !ok {
		return errInputClosed
	}

	filter := catalog.All()
	switch strings.ToLower(choice) {
	case "", "all":
	case "brand":
		brands, err := m.engine.ListBrandsShort(ctx)
		if err != nil {
			return err
		}
		if len(brands) == 0 {
			fmt.Fprintln(m.out, "No brands yet")
			return nil
		}
		id, err := m.pick("Brand id", brands)
		if err != nil {
			return err
		}
		filter = catalog.ByBrand(id)
	case "category":
		categories, err := m.engine.ListCategoriesShort(ctx)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			fmt.Fprintln(m.out, "No categories yet")
			return nil
		}
		id, err := m.pick("Category id", categories)
		if err != nil {
			return err
		}
		filter = catalog.ByCategory(id)
	default:
		fmt.Fprintln(m.out, "Unknown filter")
		return nil
	}

	products, err := m.engine.ListProducts(ctx, filter)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products found")
		return nil
	}

	fmt.Fprintln(m.out, "\nProducts:")
	for _, p := range products {
		fmt.Fprintf(m.out, "%d: %s (%s, %s) %g\" - $%.2f, qty %d\n",
			p.ProductID, p.Name, p.BrandName, p.CategoryName, p.Diagonal, p.Price, p.Quantity)
	}
	return nil
}

func (m *Menu) updateProduct(ctx context.Context) error {
	id, err := m.promptInt("Product id to update", nil)
	if err != nil {
		return err
	}
	current, err := m.engine.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	categories, err := m.engine.ListCategoriesShort(ctx)
	if err != nil {
		return err
	}
	brands, err := m.engine.ListBrandsShort(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Which category does the product belong to?")
	categoryID, err := m.pick("Category id", categories)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Which company does the product belong to?")
	brandID, err := m.pick("Brand id", brands)
	if err != nil {
		return err
	}

	in := domain.ProductInput{BrandID: brandID, CategoryID: categoryID}
	if in.Name, err = m.promptString("Product name", current.Name); err != nil {
		return err
	}
	if in.Price, err = m.promptFloat("Price", &current.Price); err != nil {
		return err
	}
	if in.Quantity, err = m.promptInt("Quantity", &current.Quantity); err != nil {
		return err
	}
	if in.Diagonal, err = m.promptFloat("Diagonal (inches)", &current.Diagonal); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", current.Description); err != nil {
		return err
	}

	if _, err := m.engine.UpdateProduct(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product updated successfully!")
	return nil
}

func (m *Menu) removeProduct(ctx context.Context) error {
	id, err := m.promptInt("Product id to remove", nil)
	if err != nil {
		return err
	}
	if err := m.engine.DeleteProduct(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product removed successfully!")
	return nil
}

// ------------------ Brands ------------------

func (m *Menu) createBrand(ctx context.Context) error {
	in := domain.BrandInput{}
	var err error
	if in.Name, err = m.promptString("Brand name", ""); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", "-"); err != nil {
		return err
	}
	if in.HQ, err = m.promptString("Headquarters", "-"); err != nil {
		return err
	}
	if in.FoundedYear, err = m.promptInt("Founded year", new(int)); err != nil {
		return err
	}
	if in.Website, err = m.promptString("Website", "-"); err != nil {
		return err
	}

	brand, err := m.engine.CreateBrand(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Brand %d successfully added!\n", brand.BrandID)
	return nil
}

func (m *Menu) updateBrand(ctx context.Context) error {
	brands, err := m.engine.ListBrandsShort(ctx)
	if err != nil {
		return err
	}
	if len(brands) == 0 {
		fmt.Fprintln(m.out, "No brands yet")
		return nil
	}
	id, err := m.pick("Brand id to update", brands)
	if err != nil {
		return err
	}
	current, err := m.engine.GetBrand(ctx, id)
	if err != nil {
		return err
	}

	in := domain.BrandInput{}
	if in.Name, err = m.promptString("Brand name", current.Name); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", orDash(current.Description)); err != nil {
		return err
	}
	if in.HQ, err = m.promptString("Headquarters", orDash(current.HQ)); err != nil {
		return err
	}
	if in.FoundedYear, err = m.promptInt("Founded year", &current.FoundedYear); err != nil {
		return err
	}
	if in.Website, err = m.promptString("Website", orDash(current.Website)); err != nil {
		return err
	}

	if _, err := m.engine.UpdateBrand(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Brand updated successfully!")
	return nil
}

func (m *Menu) removeBrand(ctx context.Context) error {
	brands, err := m.engine.ListBrandsShort(ctx)
	if err != nil {
		return err
	}
	if len(brands) == 0 {
		fmt.Fprintln(m.out, "No brands yet")
		return nil
	}
	id, err := m.pick("Brand id to remove", brands)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Removing a brand also removes its products.")
	if err := m.engine.DeleteBrand(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Brand removed successfully!")
	return nil
}

// ------------------ Categories ------------------

func (m *Menu) createCategory(ctx context.Context) error {
	in := domain.CategoryInput{}
	var err error
	if in.Name, err = m.promptString("Category name", ""); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", "-"); err != nil {
		return err
	}
	if in.Type, err = m.promptString("Type", "-"); err != nil {
		return err
	}
	if in.TargetAudience, err = m.promptString("Target audience", "-"); err != nil {
		return err
	}

	category, err := m.engine.CreateCategory(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Category %d successfully added!\n", category.CategoryID)
	return nil
}

func (m *Menu) updateCategory(ctx context.Context) error {
	categories, err := m.engine.ListCategoriesShort(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(m.out, "No categories yet")
		return nil
	}
	id, err := m.pick("Category id to update", categories)
	if err != nil {
		return err
	}
	current, err := m.engine.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	in := domain.CategoryInput{}
	if in.Name, err = m.promptString("Category name", current.Name); err != nil {
		return err
	}
	if in.Description, err = m.promptString("Description", orDash(current.Description)); err != nil {
		return err
	}
	if in.Type, err = m.promptString("Type", orDash(current.Type)); err != nil {
		return err
	}
	if in.TargetAudience, err = m.promptString("Target audience", orDash(current.TargetAudience)); err != nil {
		return err
	}

	if _, err := m.engine.UpdateCategory(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Category updated successfully!")
	return nil
}

func (m *Menu) removeCategory(ctx context.Context) error {
	categories, err := m.engine.ListCategoriesShort(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(m.out, "No categories yet")
		return nil
	}
	id, err := m.pick("Category id to remove", categories)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Removing a category also removes its products.")
	if err := m.engine.DeleteCategory(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Category removed successfully!")
	return nil
}

// orDash keeps the update prompts defaultable when a stored field is empty.
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
