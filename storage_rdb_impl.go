package koma

import (
	"bytes"
	"database/sql"
	_ "embed"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLの重複キーエラー
const errDuplicateEntry = 1062

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func (c *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.User, c.Password, c.Addr, c.Port, c.DB)
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return db, nil
}

//go:embed schema.sql
var schema string

// CreateTables は必要なテーブルがなければ作る
func CreateTables(db *sqlx.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) CountDocuments() (int, error) {
	var count int
	if err := s.DB.Get(&count, `select count(*) from documents`); err != nil {
		return -1, err
	}
	return count, nil
}

func (s *StorageRdbImpl) GetAllDocuments() ([]Document, error) {
	var docs []Document
	if err := s.DB.Select(&docs, `select * from documents order by id`); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) GetDocuments(ids []DocumentID) ([]Document, error) {
	if len(ids) == 0 {
		return []Document{}, nil
	}
	query, args, err := sqlx.In(`select * from documents where id in (?) order by id`, ids)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err = s.DB.Select(&docs, query, args...); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *StorageRdbImpl) AddDocument(doc Document) (DocumentID, error) {
	res, err := s.DB.NamedExec(`insert into documents (body, token_count) values (:body, :token_count)`,
		map[string]interface{}{
			"body":        doc.Body,
			"token_count": doc.TokenCount,
		})
	if err != nil {
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return DocumentID(insertedID), nil
}

func (s *StorageRdbImpl) AddToken(token Token) (TokenID, error) {
	res, err := s.DB.NamedExec(`insert into tokens (term) values (:term)`,
		map[string]interface{}{
			"term": token.Term,
		},
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return 0, nil
		}
		return 0, err
	}

	insertedID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return TokenID(insertedID), nil
}

// GetTokenByTerm は見つからなければ空のトークンを返す
func (s *StorageRdbImpl) GetTokenByTerm(term string) (Token, error) {
	var token Token
	if err := s.DB.Get(&token, `select * from tokens where term = ?`, term); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Token{}, nil
		}
		return Token{}, err
	}
	return token, nil
}

func (s *StorageRdbImpl) GetTokensByTerms(terms []string) ([]Token, error) {
	if len(terms) == 0 {
		return []Token{}, nil
	}

	query, args, err := sqlx.In(`select * from tokens where term in (?) order by field (term, ?)`, terms, terms)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	if err := s.DB.Select(&tokens, query, args...); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *StorageRdbImpl) GetInvertedIndexByTokenIDs(ids []TokenID) (InvertedIndex, error) {
	if len(ids) == 0 {
		return InvertedIndex{}, nil
	}
	var encoded []EncodedInvertedIndex

	query, args, err := sqlx.In(
		`select
			token_id,
			posting_list
		from
			inverted_indexes
		where
			token_id in (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err = s.DB.Select(&encoded, query, args...); err != nil {
		return nil, err
	}
	return decode(encoded)
}

func (s *StorageRdbImpl) UpsertInvertedIndex(inverted InvertedIndex) error {
	encoded, err := encode(inverted)
	if err != nil {
		return err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return err
	}
	for _, v := range encoded {
		_, err := tx.NamedExec(
			`insert into inverted_indexes (token_id, posting_list)
			values (:token_id, :posting_list)
			on duplicate key update posting_list = :posting_list`, v)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

type EncodedInvertedIndex struct {
	TokenID     TokenID `db:"token_id"`     // トークンID
	PostingList []byte  `db:"posting_list"` // トークンを含むポスティングスリスト
}

func NewEncodedInvertedIndex(id TokenID, pl []byte) EncodedInvertedIndex {
	return EncodedInvertedIndex{
		TokenID:     id,
		PostingList: pl,
	}
}

// encode はドキュメントIDを前との差分にしてGobでシリアライズする
func encode(invertedIndex InvertedIndex) ([]EncodedInvertedIndex, error) {
	encoded := make([]EncodedInvertedIndex, 0, len(invertedIndex))
	for k, v := range invertedIndex {
		if v.Postings == nil {
			continue
		}
		pl := v.clone()
		var before DocumentID
		for p := pl.Postings; p != nil; p = p.Next {
			p.DocumentID, before = p.DocumentID-before, p.DocumentID
		}

		buf := bytes.NewBuffer(nil)
		if err := gob.NewEncoder(buf).Encode(pl.Postings); err != nil {
			return nil, fmt.Errorf("encode posting list of token %d: %w", k, err)
		}
		encoded = append(encoded, NewEncodedInvertedIndex(k, buf.Bytes()))
	}
	return encoded, nil
}

func decode(e []EncodedInvertedIndex) (InvertedIndex, error) {
	m := make(InvertedIndex, len(e))
	for _, encoded := range e {
		p := &Postings{}
		if err := gob.NewDecoder(bytes.NewBuffer(encoded.PostingList)).Decode(p); err != nil {
			return nil, fmt.Errorf("decode posting list of token %d: %w", encoded.TokenID, err)
		}

		// 差分から本来のIDへ戻す
		var before DocumentID
		for c := p; c != nil; c = c.Next {
			c.DocumentID += before
			before = c.DocumentID
		}
		m[encoded.TokenID] = NewPostingList(p)
	}
	return m, nil
}
