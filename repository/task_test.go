package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevCav575/crm-simple/apperrors"
	"github.com/KevCav575/crm-simple/models"
)

func TestTaskCreateDefaults(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")

	repo := &TaskRepository{DB: db}
	task, err := repo.Create(userID, models.TaskRequest{
		Title:   "Call back",
		DueDate: "2026-09-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "medium", task.Priority)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "", task.RelatedName)
}

func TestTaskCreateRejectsCrossUserReference(t *testing.T) {
	db := openTestDB(t)
	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	bobCustomer := createCustomer(t, db, bob, "Initech")

	deals := &DealRepository{DB: db}
	bobDeal, err := deals.Create(bob, models.DealRequest{
		Title:      "Initech Renewal",
		Value:      900,
		CustomerID: bobCustomer.ID,
	})
	require.NoError(t, err)

	repo := &TaskRepository{DB: db}
	_, err = repo.Create(alice, models.TaskRequest{
		Title:       "Follow up",
		DueDate:     "2026-09-10",
		RelatedType: "deal",
		RelatedID:   uintPtr(bobDeal.ID),
	})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Count(&count).Error)
	assert.Zero(t, count, "no task row may be persisted on a failed reference check")
}

func TestTaskCreateRejectsUnknownRelatedType(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")

	repo := &TaskRepository{DB: db}
	_, err := repo.Create(userID, models.TaskRequest{
		Title:       "Follow up",
		DueDate:     "2026-09-10",
		RelatedType: "invoice",
		RelatedID:   uintPtr(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestTaskListResolvesRelatedNames(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")
	customer := createCustomer(t, db, userID, "Acme")

	repo := &TaskRepository{DB: db}
	_, err := repo.Create(userID, models.TaskRequest{
		Title:       "Visit",
		DueDate:     "2026-09-10",
		RelatedType: "customer",
		RelatedID:   uintPtr(customer.ID),
	})
	require.NoError(t, err)

	tasks, err := repo.List(userID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Acme", tasks[0].RelatedName)
}

func TestTaskDanglingReferenceResolvesEmpty(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")
	customer := createCustomer(t, db, userID, "Acme")

	repo := &TaskRepository{DB: db}
	_, err := repo.Create(userID, models.TaskRequest{
		Title:       "Visit",
		DueDate:     "2026-09-10",
		RelatedType: "customer",
		RelatedID:   uintPtr(customer.ID),
	})
	require.NoError(t, err)

	customers := &CustomerRepository{DB: db}
	require.NoError(t, customers.Delete(userID, customer.ID))

	tasks, err := repo.List(userID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "", tasks[0].RelatedName)
}

func TestTaskUpdateMergesRelatedPair(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")
	customer := createCustomer(t, db, userID, "Acme")
	other := createCustomer(t, db, userID, "Globex")

	repo := &TaskRepository{DB: db}
	task, err := repo.Create(userID, models.TaskRequest{
		Title:       "Visit",
		DueDate:     "2026-09-10",
		RelatedType: "customer",
		RelatedID:   uintPtr(customer.ID),
	})
	require.NoError(t, err)

	// Supplying only related_id keeps the stored type and re-validates.
	updated, err := repo.Update(userID, task.ID, models.TaskUpdate{RelatedID: uintPtr(other.ID)})
	require.NoError(t, err)
	assert.Equal(t, "customer", updated.RelatedType)
	require.NotNil(t, updated.RelatedID)
	assert.Equal(t, other.ID, *updated.RelatedID)
	assert.Equal(t, "Globex", updated.RelatedName)

	// related_id 0 drops the association.
	updated, err = repo.Update(userID, task.ID, models.TaskUpdate{RelatedID: uintPtr(0)})
	require.NoError(t, err)
	assert.Nil(t, updated.RelatedID)
	assert.Equal(t, "", updated.RelatedName)
}

func TestTaskUpdateEmptyBodyIsNoOp(t *testing.T) {
	db := openTestDB(t)
	userID := createUser(t, db, "alice@example.com")

	repo := &TaskRepository{DB: db}
	task, err := repo.Create(userID, models.TaskRequest{
		Title:       "Call back",
		DueDate:     "2026-09-10",
		Priority:    "high",
		Description: "ask about renewal",
	})
	require.NoError(t, err)

	updated, err := repo.Update(userID, task.ID, models.TaskUpdate{})
	require.NoError(t, err)
	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Priority, updated.Priority)
	assert.Equal(t, task.Status, updated.Status)
	assert.Equal(t, task.Description, updated.Description)
	assert.Equal(t, task.DueDate.Format("2006-01-02"), updated.DueDate.Format("2006-01-02"))
}
