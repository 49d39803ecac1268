package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stockee/backend/internal/domain/entity"
	"github.com/stockee/backend/internal/integration/adapters"
	"github.com/stockee/backend/internal/integration/persistence"
	"github.com/stockee/backend/internal/integration/persistence/model"
)

var placeholder = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.aUserExistsWithEmailAndPassword(email, defaultTestPassword)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	if _, ok := t.users[email]; ok {
		return nil
	}

	hash, err := adapters.NewPasswordService().HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.Split(email, "@")[0],
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.db.DbConn.Create(user).Error; err != nil {
		return err
	}

	t.users[email] = user.ID
	return nil
}

// iAmLoggedInAs issues a real token pair for the user, creating it first if needed.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.aUserExistsWithEmail(email); err != nil {
		return err
	}

	pair, err := t.tokenService.GenerateTokenPair(context.Background(), t.users[email], email, false)
	if err != nil {
		return err
	}

	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	t.vars["access_token"] = pair.AccessToken
	t.vars["refresh_token"] = pair.RefreshToken
	return nil
}

func (t *testContext) ownsAGroupNamed(email, name string) error {
	if err := t.aUserExistsWithEmail(email); err != nil {
		return err
	}

	now := time.Now().UTC()
	group := &model.GroupModel{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    t.users[email],
		InviteCode: strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(group).Error; err != nil {
		return err
	}

	t.vars["group_id"] = group.ID.String()
	t.vars["invite_code"] = group.InviteCode
	return nil
}

func (t *testContext) isAMemberOfGroup(email, name string) error {
	if err := t.aUserExistsWithEmail(email); err != nil {
		return err
	}

	var group model.GroupModel
	if err := t.db.DbConn.Where("name = ?", name).First(&group).Error; err != nil {
		return fmt.Errorf("group %q not found: %w", name, err)
	}

	return t.db.DbConn.Create(&model.GroupMemberModel{
		ID:        uuid.New(),
		GroupID:   group.ID,
		UserID:    t.users[email],
		CreatedAt: time.Now().UTC(),
	}).Error
}

func (t *testContext) aPersonalItemExistsFor(name string, quantity int, email string) error {
	if err := t.aUserExistsWithEmail(email); err != nil {
		return err
	}

	item := entity.NewItem(name, "pcs", quantity, entity.PersonalScope(t.users[email]))
	if err := persistence.NewItemRepository(t.db.DbConn).Create(context.Background(), item); err != nil {
		return err
	}

	t.vars["item_id"] = item.ID.String()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.iSendARequestToWithBody(method, path, body); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	value := getFieldValue(t.responseBody(), field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theEmailQueueIsProcessed() error {
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theRateLimitWindowHasPassed() error {
	t.redis.FastForward(rateLimitWindow + time.Second)
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	return placeholder.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		if value, ok := t.vars[name]; ok {
			return value
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)

	return nil
}

// captureIDs remembers ids of created resources so later steps can use
// {{group_id}}, {{invite_code}}, {{category_id}}, {{item_id}} and the tokens.
func (t *testContext) captureIDs(body map[string]any) {
	id, _ := body["id"].(string)

	switch {
	case body["invite_code"] != nil && body["owner_id"] != nil && id != "":
		t.vars["group_id"] = id
		t.vars["invite_code"], _ = body["invite_code"].(string)
	case body["is_low_stock"] != nil && id != "":
		t.vars["item_id"] = id
	case body["item_count"] != nil && id != "":
		t.vars["category_id"] = id
	}

	if token, ok := body["access_token"].(string); ok {
		t.vars["access_token"] = token
	}
	if token, ok := body["refresh_token"].(string); ok {
		t.vars["refresh_token"] = token
	}
}

func (t *testContext) responseBody() map[string]any {
	if t.response == nil {
		return nil
	}
	body, _ := t.response.body.(map[string]any)
	return body
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.responseBody() == nil {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body := t.responseBody()
	if body == nil {
		return fmt.Errorf("response is not a JSON object: %v", t.response)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body := t.responseBody()
	if body == nil {
		return fmt.Errorf("response is not a JSON object: %v", t.response)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body := t.responseBody()
	if body == nil {
		return fmt.Errorf("response is not a JSON object: %v", t.response)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveEntries(field string, count int) error {
	value := getFieldValue(t.responseBody(), field)
	entries, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(entries) != count {
		return fmt.Errorf("field '%s' expected %d entries, got %d", field, count, len(entries))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	tableModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	modelType := reflect.TypeOf(tableModel).Elem()
	rowsPtr := reflect.New(reflect.SliceOf(modelType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(rowsPtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := rowsPtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	requests := t.resend.GetRequests(http.MethodPost, "/emails")
	if len(requests) != count {
		return fmt.Errorf("expected %d emails to be sent, got %d", count, len(requests))
	}
	return nil
}

func (t *testContext) theEmailProviderRequestFieldShouldContain(index int, field, expected string) error {
	requests := t.resend.GetRequests(http.MethodPost, "/emails")
	if index >= len(requests) {
		return fmt.Errorf("only %d emails were sent", len(requests))
	}

	value := getFieldValue(requests[index], field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in email request: %v", field, requests[index])
	}
	if !strings.Contains(fmt.Sprintf("%v", value), t.replacePlaceholders(expected)) {
		return fmt.Errorf("field '%s' expected to contain '%s', got '%v'", field, expected, value)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
