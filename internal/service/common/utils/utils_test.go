package utils

import (
	"fmt"
	"reflect"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type mockDBModel struct {
	RecordID    int        `db:"record_id"`
	Name        string     `db:"name"`
	ChangedTime *time.Time `db:"changed_time"`
	Ignored     string
	CreatedAt   time.Time `db:"created_at"`
}

func (m mockDBModel) TableName() string  { return "mock_table" }
func (m mockDBModel) PrimaryKey() string { return "record_id" }
func (m mockDBModel) OnConflict() string { return "" }

var _ = Describe("Utils", func() {
	Describe("DB tags", func() {
		It("returns all tags of the model", func() {
			ar := mockDBModel{}
			tags := GetAllDBTagsFromStruct(ar)

			st := reflect.TypeOf(ar)
			Expect(tags).To(HaveLen(st.NumField() - 1))
			Expect(tags).To(ConsistOf("record_id", "name", "changed_time", "created_at"))
		})

		It("returns only the tags of RecordID and Name fields", func() {
			tags := GetDBTagsFromStructFields(mockDBModel{}, "RecordID", "Name")
			Expect(tags).To(HaveLen(2))
			Expect(tags).To(ConsistOf("record_id", "name"))
		})

		It("ignores non-existing fields", func() {
			tags := GetDBTagsFromStructFields(mockDBModel{}, "RecordID", "nonExistentField")
			Expect(tags).To(HaveLen(1))
			Expect(tags).To(ConsistOf("record_id"))
		})

		It("keeps declaration order for all columns", func() {
			Expect(GetAllColumns(mockDBModel{})).To(Equal([]string{"record_id", "name", "changed_time", "created_at"}))
		})

		It("aligns columns and values with the requested field order", func() {
			record := mockDBModel{RecordID: 7, Name: "seven"}
			fields := []string{"Name", "RecordID", "Unknown"}
			Expect(GetColumns(record, fields)).To(Equal([]string{"name", "record_id"}))
			Expect(GetFieldValues(record, fields)).To(Equal([]any{"seven", 7}))
		})
	})

	Describe("ClassifyError", func() {
		It("maps unique violations to ErrConflict", func() {
			err := ClassifyError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"})
			Expect(err).To(MatchError(ErrConflict))
			Expect(err.Error()).To(ContainSubstring("users_username_key"))
		})

		It("maps a missing parent to ErrInvalidReference", func() {
			err := ClassifyError(&pgconn.PgError{
				Code:    pgerrcode.ForeignKeyViolation,
				Message: `insert or update on table "employee" violates foreign key constraint "employee_department_code_fkey"`,
			})
			Expect(err).To(MatchError(ErrInvalidReference))
		})

		It("maps a blocked delete to ErrConflict", func() {
			err := ClassifyError(&pgconn.PgError{
				Code:    pgerrcode.ForeignKeyViolation,
				Message: `update or delete on table "department" violates foreign key constraint "employee_department_code_fkey"`,
			})
			Expect(err).To(MatchError(ErrConflict))
		})

		It("maps check violations to ErrInvalidValue", func() {
			err := ClassifyError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
			Expect(err).To(MatchError(ErrInvalidValue))
		})

		It("maps values that do not fit their column to ErrInvalidValue", func() {
			for _, code := range []string{pgerrcode.StringDataRightTruncationDataException, pgerrcode.NumericValueOutOfRange} {
				err := ClassifyError(&pgconn.PgError{Code: code, ColumnName: "position"})
				Expect(err).To(MatchError(ErrInvalidValue), code)
				Expect(err.Error()).To(ContainSubstring(`column "position"`))
			}
		})

		It("keeps the original error reachable", func() {
			pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
			err := ClassifyError(fmt.Errorf("insert failed: %w", pgErr))
			var target *pgconn.PgError
			Expect(err).To(MatchError(ErrConflict))
			Expect(errorsAs(err, &target)).To(BeTrue())
		})

		It("passes other errors through", func() {
			original := fmt.Errorf("boom")
			Expect(ClassifyError(original)).To(BeIdenticalTo(original))
		})
	})
})
