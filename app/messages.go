package app

// Messages are the notification and confirmation texts shown to the user.
type Messages struct {
	LoadTransactionsFailed string
	LoadStatisticsFailed   string

	Created      string
	CreateFailed string

	ConfirmDelete string
	Deleted       string
	DeleteFailed  string

	ConfirmDeleteAll      string
	ConfirmDeleteAllAgain string
	DeleteAllFailed       string

	NoImportData    string
	NoImportRecords string
	ImportFailed    string
}

// TW are the Traditional Chinese messages.
var TW = Messages{
	LoadTransactionsFailed: "載入交易記錄失敗",
	LoadStatisticsFailed:   "載入統計數據失敗",
	Created:                "交易記錄新增成功",
	CreateFailed:           "新增交易記錄失敗",
	ConfirmDelete:          "確定要刪除這筆交易記錄嗎？",
	Deleted:                "交易記錄刪除成功",
	DeleteFailed:           "刪除交易記錄失敗",
	ConfirmDeleteAll:       "⚠️ 警告：確定要刪除所有交易記錄嗎？此操作無法復原！",
	ConfirmDeleteAllAgain:  "請再次確認：真的要刪除所有資料嗎？",
	DeleteAllFailed:        "刪除所有交易記錄失敗",
	NoImportData:           "請輸入要匯入的資料",
	NoImportRecords:        "沒有找到有效的交易資料",
	ImportFailed:           "匯入資料失敗",
}

// EN are the English messages.
var EN = Messages{
	LoadTransactionsFailed: "Cannot load transactions",
	LoadStatisticsFailed:   "Cannot load statistics",
	Created:                "Transaction added",
	CreateFailed:           "Cannot add the transaction",
	ConfirmDelete:          "Delete this transaction?",
	Deleted:                "Transaction deleted",
	DeleteFailed:           "Cannot delete the transaction",
	ConfirmDeleteAll:       "⚠️ Warning: delete all transactions? This cannot be undone!",
	ConfirmDeleteAllAgain:  "Please confirm again: really delete all data?",
	DeleteAllFailed:        "Cannot delete all transactions",
	NoImportData:           "Enter the data to import",
	NoImportRecords:        "No valid transaction found",
	ImportFailed:           "Cannot import data",
}
