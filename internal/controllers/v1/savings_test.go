package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/spendbook/backend/internal/controllers/v1"
)

// createSavingsCategory is a test helper adding a savings category.
func (suite *TestSuiteStandard) createSavingsCategory(name string) v1.SavingsCategoryResponse {
	recorder := suite.request(http.MethodPost, "/v1/savings/categories", fmt.Sprintf(`{"name": %q}`, name))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var response v1.SavingsCategoryResponse
	suite.decode(recorder, &response)
	return response
}

// getSavings is a test helper fetching the savings list.
func (suite *TestSuiteStandard) getSavings() v1.SavingsResponse {
	recorder := suite.request(http.MethodGet, "/v1/savings", "")
	suite.assertHTTPStatus(recorder, http.StatusOK)

	var response v1.SavingsResponse
	suite.decode(recorder, &response)
	return response
}

func (suite *TestSuiteStandard) TestCreateSavingsCategory() {
	response := suite.createSavingsCategory("Vacation")

	suite.Assert().Equal("Vacation", response.Data.Name)
	suite.Assert().Equal("0", response.Data.Balance.String())
	suite.Assert().NotEmpty(response.Data.ID)
}

func (suite *TestSuiteStandard) TestCreateSavingsCategoryEmptyName() {
	recorder := suite.request(http.MethodPost, "/v1/savings/categories", `{"name": "  "}`)
	suite.assertHTTPStatus(recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSavingsTransactions() {
	category := suite.createSavingsCategory("Vacation")

	recorder := suite.request(http.MethodPost, "/v1/savings/transactions",
		fmt.Sprintf(`{"type": "deposit", "savingsCategoryId": %q, "amount": "5000", "date": "2024-06-20"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var txn v1.SavingsTransactionResponse
	suite.decode(recorder, &txn)
	suite.Assert().Equal("2024-06", txn.Data.Month.String())

	recorder = suite.request(http.MethodPost, "/v1/savings/transactions",
		fmt.Sprintf(`{"type": "withdraw", "savingsCategoryId": %q, "amount": "2000", "date": "2024-07-02"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	savings := suite.getSavings()
	suite.Require().Len(savings.Data.Categories, 1)
	suite.Assert().Equal("3000", savings.Data.Categories[0].Balance.String())
	suite.Assert().Equal("3000", savings.Data.Total.String())
	suite.Assert().NotEmpty(savings.Data.TotalDisplay)

	// The deposit reduces June's balance, the withdrawal raises July's.
	june := suite.getMonth("2024-06")
	suite.Assert().Equal("-5000", june.Data.SavingsNet.String())
	july := suite.getMonth("2024-07")
	suite.Assert().Equal("2000", july.Data.SavingsNet.String())
}

func (suite *TestSuiteStandard) TestSavingsTransactionMonthOverride() {
	category := suite.createSavingsCategory("Vacation")

	recorder := suite.request(http.MethodPost, "/v1/savings/transactions",
		fmt.Sprintf(`{"type": "deposit", "savingsCategoryId": %q, "amount": "100", "date": "2024-07-01", "monthKey": "2024-06"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	var txn v1.SavingsTransactionResponse
	suite.decode(recorder, &txn)
	suite.Assert().Equal("2024-06", txn.Data.Month.String())
}

func (suite *TestSuiteStandard) TestSavingsTransactionInvalid() {
	category := suite.createSavingsCategory("Vacation")

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", fmt.Sprintf(`{"type": "transfer", "savingsCategoryId": %q, "amount": "100"}`, category.Data.ID)},
		{"missing category", `{"type": "deposit", "amount": "100"}`},
		{"zero amount", fmt.Sprintf(`{"type": "deposit", "savingsCategoryId": %q, "amount": "0"}`, category.Data.ID)},
		{"bad month key", fmt.Sprintf(`{"type": "deposit", "savingsCategoryId": %q, "amount": "100", "monthKey": "June"}`, category.Data.ID)},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodPost, "/v1/savings/transactions", tt.body)
		suite.assertHTTPStatus(recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestDeleteSavingsCategoryCascades() {
	category := suite.createSavingsCategory("Vacation")
	keep := suite.createSavingsCategory("Emergency")

	recorder := suite.request(http.MethodPost, "/v1/savings/transactions",
		fmt.Sprintf(`{"type": "deposit", "savingsCategoryId": %q, "amount": "5000"}`, category.Data.ID))
	suite.assertHTTPStatus(recorder, http.StatusCreated)

	recorder = suite.request(http.MethodDelete, "/v1/savings/categories/"+category.Data.ID, "")
	suite.assertHTTPStatus(recorder, http.StatusNoContent)

	savings := suite.getSavings()
	suite.Require().Len(savings.Data.Categories, 1)
	suite.Assert().Equal(keep.Data.ID, savings.Data.Categories[0].ID)
	suite.Assert().Equal("0", savings.Data.Total.String())
}
