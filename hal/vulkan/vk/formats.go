// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Format constants from the Vulkan 1.3 core VkFormat enum, restricted to the
// subset referenced by the texture format conversion table. Values match the
// Khronos registry numbering exactly so they interoperate with a real driver.
const (
	FormatUndefined Format = 0

	FormatR8Unorm Format = 9
	FormatR8Snorm Format = 10
	FormatR8Uint  Format = 13
	FormatR8Sint  Format = 14

	FormatR8g8Unorm Format = 16
	FormatR8g8Snorm Format = 17
	FormatR8g8Uint  Format = 20
	FormatR8g8Sint  Format = 21

	FormatR8g8b8a8Unorm Format = 37
	FormatR8g8b8a8Snorm Format = 38
	FormatR8g8b8a8Uint  Format = 41
	FormatR8g8b8a8Sint  Format = 42
	FormatR8g8b8a8Srgb  Format = 43

	FormatB8g8r8a8Unorm Format = 44
	FormatB8g8r8a8Srgb  Format = 50

	FormatA2b10g10r10UnormPack32 Format = 64
	FormatA2b10g10r10UintPack32  Format = 68

	FormatR16Uint   Format = 74
	FormatR16Sint   Format = 75
	FormatR16Sfloat Format = 76

	FormatR16g16Uint   Format = 81
	FormatR16g16Sint   Format = 82
	FormatR16g16Sfloat Format = 83

	FormatR16g16b16a16Uint   Format = 95
	FormatR16g16b16a16Sint   Format = 96
	FormatR16g16b16a16Sfloat Format = 97

	FormatR32Uint   Format = 98
	FormatR32Sint   Format = 99
	FormatR32Sfloat Format = 100

	FormatR32g32Uint   Format = 101
	FormatR32g32Sint   Format = 102
	FormatR32g32Sfloat Format = 103

	FormatR32g32b32a32Uint   Format = 107
	FormatR32g32b32a32Sint   Format = 108
	FormatR32g32b32a32Sfloat Format = 109

	FormatB10g11r11UfloatPack32 Format = 122
	FormatE5b9g9r9UfloatPack32  Format = 123

	FormatD16Unorm       Format = 124
	FormatX8D24UnormPack32 Format = 125
	FormatD32Sfloat      Format = 126
	FormatS8Uint         Format = 127
	FormatD24UnormS8Uint Format = 129
	FormatD32SfloatS8Uint Format = 130

	FormatBc1RgbaUnormBlock Format = 133
	FormatBc1RgbaSrgbBlock  Format = 134
	FormatBc2UnormBlock     Format = 135
	FormatBc2SrgbBlock      Format = 136
	FormatBc3UnormBlock     Format = 137
	FormatBc3SrgbBlock      Format = 138
	FormatBc4UnormBlock     Format = 139
	FormatBc4SnormBlock     Format = 140
	FormatBc5UnormBlock     Format = 141
	FormatBc5SnormBlock     Format = 142
	FormatBc6hUfloatBlock   Format = 143
	FormatBc6hSfloatBlock   Format = 144
	FormatBc7UnormBlock     Format = 145
	FormatBc7SrgbBlock      Format = 146

	FormatEtc2R8g8b8UnormBlock   Format = 147
	FormatEtc2R8g8b8SrgbBlock    Format = 148
	FormatEtc2R8g8b8a1UnormBlock Format = 149
	FormatEtc2R8g8b8a1SrgbBlock  Format = 150
	FormatEtc2R8g8b8a8UnormBlock Format = 151
	FormatEtc2R8g8b8a8SrgbBlock  Format = 152

	FormatEacR11UnormBlock    Format = 153
	FormatEacR11SnormBlock    Format = 154
	FormatEacR11g11UnormBlock Format = 155
	FormatEacR11g11SnormBlock Format = 156

	FormatAstc4x4UnormBlock   Format = 157
	FormatAstc4x4SrgbBlock    Format = 158
	FormatAstc5x4UnormBlock   Format = 159
	FormatAstc5x4SrgbBlock    Format = 160
	FormatAstc5x5UnormBlock   Format = 161
	FormatAstc5x5SrgbBlock    Format = 162
	FormatAstc6x5UnormBlock   Format = 163
	FormatAstc6x5SrgbBlock    Format = 164
	FormatAstc6x6UnormBlock   Format = 165
	FormatAstc6x6SrgbBlock    Format = 166
	FormatAstc8x5UnormBlock   Format = 167
	FormatAstc8x5SrgbBlock    Format = 168
	FormatAstc8x6UnormBlock   Format = 169
	FormatAstc8x6SrgbBlock    Format = 170
	FormatAstc8x8UnormBlock   Format = 171
	FormatAstc8x8SrgbBlock    Format = 172
	FormatAstc10x5UnormBlock  Format = 173
	FormatAstc10x5SrgbBlock   Format = 174
	FormatAstc10x6UnormBlock  Format = 175
	FormatAstc10x6SrgbBlock   Format = 176
	FormatAstc10x8UnormBlock  Format = 177
	FormatAstc10x8SrgbBlock   Format = 178
	FormatAstc10x10UnormBlock Format = 179
	FormatAstc10x10SrgbBlock  Format = 180
	FormatAstc12x10UnormBlock Format = 181
	FormatAstc12x10SrgbBlock  Format = 182
	FormatAstc12x12UnormBlock Format = 183
	FormatAstc12x12SrgbBlock  Format = 184
)
