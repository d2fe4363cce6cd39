package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 入参都是已校验的Payload或已规范化的ListParams
// 2. 不关心事务边界,由应用层通过ctx传入
type Service interface {
	// CreateBook 创建图书
	CreateBook(ctx context.Context, p Payload) (*Book, error)

	// GetBookByID 根据ID获取图书
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// ReplaceBook 整体替换图书字段(ID和CreatedAt保持不变)
	ReplaceBook(ctx context.Context, id uint, p Payload) (*Book, error)

	// DeleteBook 删除图书,返回被删除的记录
	DeleteBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 分页查询
	ListBooks(ctx context.Context, params ListParams) (*ListResult, error)

	// Stats 全表统计
	Stats(ctx context.Context) (*Stats, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, p Payload) (*Book, error) {
	b := NewBook(p)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// ReplaceBook 整体替换
func (s *service) ReplaceBook(ctx context.Context, id uint, p Payload) (*Book, error) {
	// 1. 先查,不存在直接返回404
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 覆盖可变字段
	b.Apply(p)

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks 分页查询
func (s *service) ListBooks(ctx context.Context, params ListParams) (*ListResult, error) {
	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return NewListResult(items, total, params), nil
}

// Stats 全表统计
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
